// Package process lists and launches OS processes for the host executable.
package process

import (
	"context"
	"runtime"

	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
	"go.trai.ch/zerr"
)

// Table implements ports.ProcessTable by running the platform process listing tool.
type Table struct {
	executor ports.Executor
	goos     string
}

// NewTable creates a Table for the running platform.
func NewTable(executor ports.Executor) *Table {
	return &Table{executor: executor, goos: runtime.GOOS}
}

// List returns the raw process listing.
func (t *Table) List(ctx context.Context) (string, error) {
	out, err := t.executor.Output(ctx, ListCommand(t.goos))
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrProcessListFailed.Error())
	}
	return string(out), nil
}

// ListCommand returns the process listing invocation for goos.
func ListCommand(goos string) domain.Command {
	if goos == "windows" {
		return domain.NewCommand("tasklist")
	}
	return domain.NewCommand("ps", "aux")
}
