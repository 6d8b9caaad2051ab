// Package shell provides an executor for running external programs such as the compiler.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec and pty.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd in a PTY (on supported systems) or standard pipes and waits for it.
// When stdout is nil the output is forwarded line by line to the logger.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout io.Writer) error {
	if cmd.Name == "" {
		return nil
	}

	if stdout == nil {
		lw := &logWriter{logger: e.logger}
		defer func() { _ = lw.Close() }()
		stdout = lw
	}

	c := e.command(ctx, cmd)

	ptmx, err := pty.Start(c)
	if err != nil {
		// No PTY on this host, or the start failed: retry once with plain pipes.
		c = e.command(ctx, cmd)
		c.Stdout = stdout
		c.Stderr = stdout
		err = c.Run()
	} else {
		ioDone := make(chan struct{})
		go func() {
			defer close(ioDone)
			// PTY merges stdout and stderr.
			_, _ = io.Copy(stdout, ptmx)
		}()

		err = c.Wait()
		<-ioDone
		_ = ptmx.Close()
	}

	if err != nil {
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode(err))
	}
	return nil
}

// Output runs cmd with plain pipes and returns its standard output.
func (e *Executor) Output(ctx context.Context, cmd domain.Command) ([]byte, error) {
	c := e.command(ctx, cmd)

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode(err))
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return nil, err
	}
	return out, nil
}

func (e *Executor) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // compiler invocation is configured by the user
	c.Env = cmd.Environ(os.Environ())
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	return c
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}
