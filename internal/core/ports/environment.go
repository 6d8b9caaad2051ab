package ports

import (
	"context"

	"go.trai.ch/hotloop/internal/core/domain"
)

// EnvironmentResolver produces the platform build parameters.
//
// Implementations are responsible for:
//   - Locating the toolchain and failing when it is absent
//   - Choosing the module suffix and linker flags for the host platform
//   - Staging runtime shared libraries the host executable needs at launch
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentResolver interface {
	// Resolve is called once at startup. It must be safe to call again.
	Resolve(ctx context.Context, settings domain.Settings) (domain.BuildConfig, error)
}
