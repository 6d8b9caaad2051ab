package process

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.ProcessLauncher.
// Children run in their own process group so terminal signals aimed at hotloop do not reach them.
type Launcher struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a Launcher whose children inherit the standard streams.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger, stdout: os.Stdout, stderr: os.Stderr}
}

// SetOutput redirects the standard streams of children launched afterwards.
func (l *Launcher) SetOutput(stdout, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

// Launch starts cmd and returns its PID without waiting for it.
func (l *Launcher) Launch(cmd domain.Command) (int, error) {
	c := exec.Command(cmd.Name, cmd.Args...) //nolint:gosec // host executable is configured by the user
	c.Env = cmd.Environ(os.Environ())
	c.Dir = cmd.Dir
	c.Stdout = l.stdout
	c.Stderr = l.stderr
	c.SysProcAttr = sysProcAttr()

	if err := c.Start(); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrProcessSpawnFailed.Error()), "executable", cmd.Name)
	}

	pid := c.Process.Pid
	name := filepath.Base(cmd.Name)

	// Reap the child so it does not linger as a zombie in the process table.
	go func() {
		err := c.Wait()
		if err != nil {
			l.logger.Warn(name + " exited: " + err.Error())
			return
		}
		l.logger.Info(name + " (pid " + strconv.Itoa(pid) + ") exited.")
	}()

	return pid, nil
}
