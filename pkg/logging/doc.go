// Package logging provides the process-wide structured logger for hivemcp.
//
// It is a thin layer over log/slog that tags every entry with a subsystem
// name so output from the dispatcher, the hive orchestrator and the transports
// can be filtered independently.
//
// # Usage
//
//	logging.Init(logging.LevelInfo, logging.FormatText, os.Stderr)
//
//	logging.Info("Bootstrap", "Starting hive %s", hiveID)
//	logging.Debug("Dispatcher", "Handling %s", method)
//	logging.Warn("Events", "NATS sink disconnected")
//	logging.Error("Server", err, "HTTP bridge stopped")
//
// Output always goes to the writer passed to Init. The stdio transport owns
// stdout, so the application passes os.Stderr.
//
// # Runtime level changes
//
// The minimum level is held in a slog.LevelVar. SetLevel adjusts it without
// rebuilding handlers, which is how configuration hot reload changes
// verbosity of a running server.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package logging
