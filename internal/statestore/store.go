package statestore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"movieshows/internal/config"
)

// Store is a durable key-value surface for interaction state.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set replaces the value for key atomically.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

var (
	// ErrInvalidKey rejects keys that cannot be stored portably.
	ErrInvalidKey = errors.New("invalid state key")
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("state store closed")
)

// Open returns the backend selected by cfg.State.Backend.
func Open(cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, errors.New("open state store: nil config")
	}
	switch cfg.State.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("ensure directories: %w", err)
		}
		return OpenFileStore(filepath.Join(cfg.Paths.StateDir, "state"))
	case config.BackendSQLite, "":
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("ensure directories: %w", err)
		}
		return OpenSQLite(cfg.SQLitePath())
	default:
		return nil, fmt.Errorf("open state store: unsupported backend %q", cfg.State.Backend)
	}
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	if key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}
