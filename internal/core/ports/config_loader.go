package ports

import "go.trai.ch/hotloop/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and merges it over the defaults.
	// A missing file yields the defaults.
	Load(path string) (domain.Settings, error)
}
