package ports

import (
	"context"

	"go.trai.ch/hotloop/internal/core/domain"
)

// Builder rebuilds both artifacts and hands off to the process manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	BuildAndRun(ctx context.Context) domain.BuildOutcome
}
