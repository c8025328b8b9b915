package config

import "go.trai.ch/cookbook/internal/core/domain"

// Cookbookfile is the structure of cookbook.yaml.
type Cookbookfile struct {
	Version string    `yaml:"version"`
	Server  ServerDTO `yaml:"server"`
	Log     LogDTO    `yaml:"log"`
	Seeds   []string  `yaml:"seeds"`
}

// ServerDTO is the server section of cookbook.yaml.
type ServerDTO struct {
	Addr            string `yaml:"addr"`
	AllowedOrigin   string `yaml:"allowedOrigin"`
	ShutdownTimeout string `yaml:"shutdownTimeout"`
}

// LogDTO is the log section of cookbook.yaml.
type LogDTO struct {
	Format string `yaml:"format"`
}

// Seedfile is the structure of a seed file.
type Seedfile struct {
	Entries []domain.EntryInput `yaml:"entries"`
}
