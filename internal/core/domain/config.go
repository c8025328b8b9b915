package domain

import "time"

// Log formats accepted by the logger.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// DefaultConfigFile is the configuration file looked up when none is given.
const DefaultConfigFile = "cookbook.yaml"

// Config is the resolved runtime configuration.
type Config struct {
	Version string
	Server  ServerConfig
	Log     LogConfig
	// Seeds are seed file paths, already resolved against the config file directory.
	Seeds []string
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr            string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
}

// LogConfig configures the logger output.
type LogConfig struct {
	Format string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigin:   "*",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Format: LogFormatPretty},
	}
}
