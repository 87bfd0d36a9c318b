// Package logging provides the structured logging used by confkit.
//
// It wraps Go's standard slog package with subsystem-tagged helpers so that
// every log line carries the component that produced it.
//
// # Log Levels
//   - **Debug**: store loading details and file watch events
//   - **Info**: loaded files, reloads
//   - **Warn**: recoverable problems such as an unreadable tool config
//   - **Error**: failures, with the error attached
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Store", "Loaded %d files", len(paths))
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Error("Watch", err, "Reload of %s failed", path)
//
// Levels can be parsed from flags or config with ParseLevel.
//
// # Subsystems
//
//   - **Store**: configuration store loading and merging
//   - **Watch**: file change detection and reloads
//   - **Config**: confkit's own configuration
//   - **CLI**: command execution
//
// Until InitForCLI is called only Error messages are emitted, to stderr.
// The package is safe for concurrent use.
package logging
