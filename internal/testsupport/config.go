package testsupport

import (
	"path/filepath"
	"testing"

	"markmymedia/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// History is pointed at the test's temp dir but left disabled unless an
// option enables it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(base, "out")
	cfg.Workers = 2
	cfg.History.Enabled = false
	cfg.History.Path = filepath.Join(base, "history.db")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithHistoryEnabled turns on history recording for the test config.
func WithHistoryEnabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = true
	}
}
