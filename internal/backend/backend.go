// Package backend selects and builds the ledger's storage strategy.
package backend

import (
	"fmt"

	"tally/internal/config"
	"tally/internal/log"
	"tally/internal/storage"
	"tally/internal/storage/flatfile"
	"tally/internal/storage/memory"
)

// Type represents the kind of backing store.
type Type string

const (
	FileBackend   Type = "file"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{FileBackend, MemoryBackend}
}

// Config holds what the factory needs to build a store.
type Config struct {
	Type       Type
	LedgerFile string
}

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:       backendType,
		LedgerFile: appConfig.LedgerFile,
	}, nil
}

// CreateStore builds the storage strategy for the given config.
func CreateStore(cfg Config, logger *log.Logger) (storage.Store, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentBackend)

	switch cfg.Type {
	case FileBackend:
		store := flatfile.New(cfg.LedgerFile)
		logger.Info("Initialized file backend",
			log.FieldBackend, cfg.Type.String(),
			log.FieldPath, store.Path())
		return store, nil
	case MemoryBackend:
		logger.Info("Initialized memory backend",
			log.FieldBackend, cfg.Type.String())
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
