package environment

import "go.trai.ch/hotloop/internal/core/ports"

// NewResolverFor creates a Resolver that behaves as if running on goos/goarch.
func NewResolverFor(executor ports.Executor, logger ports.Logger, goos, goarch string) *Resolver {
	return &Resolver{executor: executor, logger: logger, goos: goos, goarch: goarch}
}
