// Package supervisor starts the host executable once and leaves later reloads to it.
package supervisor

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
)

var _ ports.ProcessManager = (*Manager)(nil)

// Manager implements ports.ProcessManager.
// Liveness is derived from the process table on every call; no handle is kept, so a
// host started by an earlier hotloop session is recognised too.
type Manager struct {
	executable string
	config     domain.BuildConfig
	table      ports.ProcessTable
	launcher   ports.ProcessLauncher
	logger     ports.Logger
}

// NewManager creates a Manager for the executable named in settings.
func NewManager(
	settings domain.Settings,
	config domain.BuildConfig,
	table ports.ProcessTable,
	launcher ports.ProcessLauncher,
	logger ports.Logger,
) *Manager {
	return &Manager{
		executable: settings.Executable,
		config:     config,
		table:      table,
		launcher:   launcher,
		logger:     logger,
	}
}

// IsRunning reports whether the executable name appears in the process listing.
// A failed listing counts as not running.
func (m *Manager) IsRunning(ctx context.Context) bool {
	listing, err := m.table.List(ctx)
	if err != nil {
		m.logger.Warn("Could not inspect running processes: " + err.Error())
		return false
	}
	return strings.Contains(listing, filepath.Base(m.executable))
}

// RunOrNotify starts the executable when it is not running.
// Otherwise the host is expected to pick up the new module by itself.
func (m *Manager) RunOrNotify(ctx context.Context) domain.RunAction {
	name := filepath.Base(m.executable)

	if m.IsRunning(ctx) {
		m.logger.Info("Hot reloading " + name + "...")
		return domain.RunReloaded
	}

	m.logger.Info("Starting " + name + "...")

	cmd := domain.NewCommand(LaunchPath(m.executable))
	if dir := m.config.LibraryDir(); dir != "" {
		key := m.config.LibraryPathVar()
		cmd.Env = []string{key + "=" + PrependPath(dir, os.Getenv(key))}
	}

	pid, err := m.launcher.Launch(cmd)
	if err != nil {
		m.logger.Error(err)
		return domain.RunFailed
	}

	m.logger.Info(name + " is running (pid " + strconv.Itoa(pid) + ").")
	return domain.RunStarted
}

// LaunchPath makes a bare executable name refer to the working directory
// instead of a PATH lookup.
func LaunchPath(executable string) string {
	if filepath.IsAbs(executable) || strings.ContainsRune(executable, filepath.Separator) ||
		strings.ContainsRune(executable, '/') {
		return executable
	}
	return "." + string(filepath.Separator) + executable
}

// PrependPath puts dir in front of an existing search path list.
func PrependPath(dir, existing string) string {
	if existing == "" {
		return dir
	}
	return dir + string(os.PathListSeparator) + existing
}
