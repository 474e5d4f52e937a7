package testsupport

import (
	"path/filepath"
	"testing"

	"movieshows/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The memory state backend is used unless an option selects another one.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Source.Base = filepath.Join(base, "site")
	cfgVal.State.Backend = config.BackendMemory

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithBackend selects the state backend.
func WithBackend(backend string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.State.Backend = backend
	}
}

// WithOverride sets the explicit payload location.
func WithOverride(location string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.Override = location
	}
}

// WithCandidates replaces the conventional candidate list.
func WithCandidates(candidates ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Source.Candidates = append([]string(nil), candidates...)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
