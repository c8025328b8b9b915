// Package config loads cookbook.yaml and seed files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/cookbook/internal/core/domain"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. Unset fields keep their defaults and
// seed paths and patterns are resolved against the directory of path.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to load config"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Cookbookfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return toDomain(&file, filepath.Dir(path))
}

func toDomain(file *Cookbookfile, dir string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Version != "" {
		cfg.Version = file.Version
	}
	if file.Server.Addr != "" {
		cfg.Server.Addr = file.Server.Addr
	}
	if file.Server.AllowedOrigin != "" {
		cfg.Server.AllowedOrigin = file.Server.AllowedOrigin
	}
	if file.Server.ShutdownTimeout != "" {
		timeout, err := time.ParseDuration(file.Server.ShutdownTimeout)
		if err != nil || timeout <= 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidShutdownTimeout, "failed to load config"),
				"shutdownTimeout", file.Server.ShutdownTimeout)
		}
		cfg.Server.ShutdownTimeout = timeout
	}
	if file.Log.Format != "" {
		cfg.Log.Format = file.Log.Format
	}

	seeds, err := expandSeeds(file.Seeds, dir)
	if err != nil {
		return nil, err
	}
	cfg.Seeds = seeds

	return cfg, nil
}

// LoadSeed reads the entries of the seed file at path.
func (l *Loader) LoadSeed(path string) ([]domain.EntryInput, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSeedReadFailed, err.Error()), "path", path)
	}

	var file Seedfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSeedParseFailed, err.Error()), "path", path)
	}

	if len(file.Entries) == 0 {
		l.logger.Warn("seed file " + path + " has no entries")
	}
	return file.Entries, nil
}
