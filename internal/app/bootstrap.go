package app

import (
	"context"
	"fmt"
	"os"

	"hivemcp/internal/config"
	"hivemcp/pkg/logging"
)

// Application represents the main application structure that bootstraps and
// runs the hive server.
//
// The Application follows a two-phase initialization pattern:
//  1. Bootstrap phase: load configuration, initialize logging, set up services
//  2. Execution phase: serve the selected transport until shutdown
//
// Example usage:
//
//	cfg := app.NewConfig(false, "/etc/hivemcp")
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads and validates the configuration, configures logging
// and initializes all services. Logging always goes to stderr because
// stdout may carry the stdio transport.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.Init(appLogLevel, logging.FormatText, os.Stderr)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
		cfg.ConfigPath = configPath
	}

	hiveCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", configPath)
		return nil, fmt.Errorf("failed to load configuration from path %s: %w", configPath, err)
	}
	cfg.applyOverrides(&hiveCfg)

	if err := config.Validate(hiveCfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.HiveConfig = &hiveCfg

	level, _ := logging.ParseLevel(hiveCfg.Logging.Level)
	logging.Init(level, logging.Format(hiveCfg.Logging.Format), os.Stderr)

	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Run serves until ctx is cancelled, a termination signal arrives or the
// stdio input ends. Services are closed before Run returns.
func (a *Application) Run(ctx context.Context) error {
	defer a.services.Close()
	return runServer(ctx, a.config, a.services)
}
