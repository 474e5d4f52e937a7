package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSource(); err != nil {
		return err
	}
	c.normalizeState()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSource() error {
	var err error
	c.Source.Base = strings.TrimSpace(c.Source.Base)
	if c.Source.Base == "" {
		c.Source.Base = defaultSourceBase
	}
	if IsRemote(c.Source.Base) {
		c.Source.Base = strings.TrimRight(c.Source.Base, "/") + "/"
	} else if c.Source.Base, err = expandPath(c.Source.Base); err != nil {
		return fmt.Errorf("source.base: %w", err)
	}

	c.Source.Override = strings.TrimSpace(c.Source.Override)
	if c.Source.Override == "" {
		if value, ok := os.LookupEnv("MOVIESHOWS_SOURCE"); ok {
			c.Source.Override = strings.TrimSpace(value)
		}
	}

	c.Source.InjectPath = strings.TrimSpace(c.Source.InjectPath)
	if c.Source.InjectPath == "" {
		if value, ok := os.LookupEnv("MOVIESHOWS_CONTENT_FILE"); ok {
			c.Source.InjectPath = strings.TrimSpace(value)
		}
	}
	if c.Source.InjectPath != "" {
		if c.Source.InjectPath, err = expandPath(c.Source.InjectPath); err != nil {
			return fmt.Errorf("source.inject_path: %w", err)
		}
	}
	if value, ok := os.LookupEnv("MOVIESHOWS_CONTENT"); ok && strings.TrimSpace(value) != "" {
		c.Source.InjectedJSON = value
	}

	candidates := make([]string, 0, len(c.Source.Candidates))
	for _, candidate := range c.Source.Candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			candidates = append(candidates, trimmed)
		}
	}
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}
	c.Source.Candidates = candidates

	if c.Source.RequestTimeout <= 0 {
		c.Source.RequestTimeout = defaultRequestTimeout
	}
	c.Source.UserAgent = strings.TrimSpace(c.Source.UserAgent)
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = defaultUserAgent
	}
	return nil
}

func (c *Config) normalizeState() {
	c.State.Backend = strings.ToLower(strings.TrimSpace(c.State.Backend))
	if c.State.Backend == "" {
		c.State.Backend = defaultStateBackend
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = 0
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
