package ports

import "go.trai.ch/cookbook/internal/core/domain"

// ConfigLoader reads the configuration file and seed files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path. It fails with domain.ErrConfigNotFound
	// if the file does not exist.
	Load(path string) (*domain.Config, error)

	// LoadSeed reads the entries listed in a seed file.
	LoadSeed(path string) ([]domain.EntryInput, error)
}
