// Package app provides application bootstrap and lifecycle management for
// the hive server.
//
// # Architecture Overview
//
//  1. Bootstrap (bootstrap.go): load config.yaml, apply command line
//     overrides, validate, configure logging and build the services
//  2. Configuration (config.go): runtime settings from the command line
//  3. Services (services.go): the hive, its collaborators, the protocol
//     dispatcher and the optional event bus and executor
//  4. Modes (modes.go): run the selected transport with the background
//     workers under one errgroup
//
// # Lifecycle
//
//	cfg := app.NewConfig(debug, configPath)
//	cfg.Transport = "stdio"
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// Run returns when the context is cancelled, on SIGINT or SIGTERM, or when
// the stdio transport reaches the end of its input. Under systemd the
// process reports READY=1 once serving and STOPPING=1 on shutdown.
//
// # Hot Reload
//
// With WatchConfig set, changes to config.yaml are applied while running.
// Only the log level and the NLP timeout are reloadable; transport, hive
// and event settings require a restart.
package app
