package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"movieshows/internal/config"
	"movieshows/internal/logging"
	"movieshows/internal/shell"
	"movieshows/internal/source"
	"movieshows/internal/statestore"
)

type commandContext struct {
	configFlag *string
	sourceFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	shellOnce sync.Once
	logger    *slog.Logger
	store     statestore.Store
	shell     *shell.Shell
	shellErr  error
}

func newCommandContext(configFlag, sourceFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		sourceFlag: sourceFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.sourceFlag != nil {
			if override := strings.TrimSpace(*c.sourceFlag); override != "" {
				cfg.Source.Override = override
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureShell opens the state store and loads the catalog. The catalog is
// resolved once per invocation.
func (c *commandContext) ensureShell(ctx context.Context) (*shell.Shell, error) {
	c.shellOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.shellErr = err
			return
		}

		var extra []string
		if c.verbose != nil && *c.verbose {
			extra = append(extra, "stderr")
		}
		logger, err := logging.NewFromConfig(cfg, extra...)
		if err != nil {
			c.shellErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.logger = logger

		store, err := statestore.Open(cfg)
		if err != nil {
			c.shellErr = fmt.Errorf("open state store: %w", err)
			return
		}
		c.store = store

		resolver := source.NewResolver(ctx, cfg, logger)
		c.shell = shell.New(ctx, cfg, store, resolver, logger)
		c.shell.Reload(ctx)
	})
	return c.shell, c.shellErr
}

// withShell runs fn against the loaded shell.
func (c *commandContext) withShell(cmd *cobra.Command, fn func(context.Context, *shell.Shell) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := c.ensureShell(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, s)
}

func (c *commandContext) close() error {
	if c.store == nil {
		return nil
	}
	store := c.store
	c.store = nil
	if err := store.Close(); err != nil {
		return fmt.Errorf("close state store: %w", err)
	}
	return nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
