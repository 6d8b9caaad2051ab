package ports

import (
	"context"

	"go.trai.ch/hotloop/internal/core/domain"
)

// ProcessTable lists the processes running on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessTable interface {
	// List returns the raw output of the OS process listing facility.
	List(ctx context.Context) (string, error)
}

// ProcessLauncher starts detached processes.
type ProcessLauncher interface {
	// Launch starts cmd without waiting for it and returns its PID.
	// The child outlives the caller.
	Launch(cmd domain.Command) (int, error)
}

// ProcessManager decides whether the host executable must be started after a successful build.
type ProcessManager interface {
	// IsRunning reports whether the host executable appears in the process table.
	IsRunning(ctx context.Context) bool
	// RunOrNotify starts the host when it is not running.
	RunOrNotify(ctx context.Context) domain.RunAction
}
