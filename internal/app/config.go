package app

import (
	"io"

	"hivemcp/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug forces debug logging regardless of the file configuration.
	Debug bool

	// ConfigPath is the directory containing config.yaml.
	ConfigPath string

	// WatchConfig enables hot reload of config.yaml.
	WatchConfig bool

	// Version is reported in serverInfo.
	Version string

	// Overrides from command line flags. Zero values leave the file
	// configuration untouched.
	Transport string
	Host      string
	Port      int

	// Stdin and Stdout are used by the stdio transport. They default to
	// the process streams.
	Stdin  io.Reader
	Stdout io.Writer

	// HiveConfig is the loaded file configuration with overrides applied.
	HiveConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// applyOverrides copies the non-zero flag values onto cfg.
func (c *Config) applyOverrides(cfg *config.Config) {
	if c.Transport != "" {
		cfg.Server.Transport = c.Transport
	}
	if c.Host != "" {
		cfg.Server.Host = c.Host
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Debug {
		cfg.Logging.Level = "debug"
	}
}
