package ports

import "go.trai.ch/weld/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers weld.yaml upward from cwd and returns the resolved
	// configuration with all paths made absolute.
	Load(cwd string) (*domain.Config, error)
}
