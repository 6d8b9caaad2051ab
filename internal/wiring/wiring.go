// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hotloop/internal/adapters/config"
	_ "go.trai.ch/hotloop/internal/adapters/environment"
	_ "go.trai.ch/hotloop/internal/adapters/fs"
	_ "go.trai.ch/hotloop/internal/adapters/logger"
	_ "go.trai.ch/hotloop/internal/adapters/process"
	_ "go.trai.ch/hotloop/internal/adapters/shell"
	_ "go.trai.ch/hotloop/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/hotloop/internal/app"
)
