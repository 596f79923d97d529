// Package cli wires configuration, logging and the storage backend into
// the interactive console application.
package cli

import (
	"log/slog"

	"github.com/joho/godotenv"
	"tally/internal/log"
)

// SetupLogger initializes structured logging at the given level and sets
// it as the process default. Log lines go to stderr so stdout stays clean
// for the menu.
func SetupLogger(level slog.Level) *log.Logger {
	logger := log.New(log.Config{
		Level:     level,
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}
