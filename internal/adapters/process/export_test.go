package process

import "go.trai.ch/hotloop/internal/core/ports"

// NewTableFor creates a Table that behaves as if running on goos.
func NewTableFor(executor ports.Executor, goos string) *Table {
	return &Table{executor: executor, goos: goos}
}
