package ports

import "go.trai.ch/timebar/internal/core/domain"

// ConfigLoader defines the interface for loading the time bar configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. An empty path searches the working
	// directory and its parents for domain.ConfigFileName.
	Load(path string) (*domain.Config, error)
}
