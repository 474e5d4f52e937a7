package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateState(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.RequestTimeout <= 0 {
		return errors.New("source.request_timeout must be positive (seconds)")
	}
	if len(c.Source.Candidates) == 0 {
		return errors.New("source.candidates must include at least one location")
	}
	if IsRemote(c.Source.Base) {
		if _, err := url.Parse(c.Source.Base); err != nil {
			return fmt.Errorf("source.base: invalid URL: %w", err)
		}
	}
	if IsRemote(c.Source.Override) {
		if _, err := url.Parse(c.Source.Override); err != nil {
			return fmt.Errorf("source.override: invalid URL: %w", err)
		}
	}
	return nil
}

func (c *Config) validateState() error {
	switch c.State.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
		return nil
	default:
		return fmt.Errorf("state.backend must be one of %q, %q, %q (got %q)", BackendSQLite, BackendFile, BackendMemory, c.State.Backend)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB <= 0 {
		return errors.New("logging.max_size_mb must be positive")
	}
	return nil
}
