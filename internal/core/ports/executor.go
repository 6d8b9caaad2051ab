// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/hotloop/internal/core/domain"
)

// Executor defines the interface for running external programs such as the compiler.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout.
	// A non-zero exit is returned as an error carrying the exit code.
	Execute(ctx context.Context, cmd domain.Command, stdout io.Writer) error

	// Output runs cmd and returns its standard output.
	Output(ctx context.Context, cmd domain.Command) ([]byte, error)
}
