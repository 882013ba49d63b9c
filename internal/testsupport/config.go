// Package testsupport provides helpers for wiring temp-dir configs and
// stores inside tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"tradehall/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp data directory per
// test. It applies any provided options after the defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(t.TempDir(), "data")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithManifestURL points the loader at a test server.
func WithManifestURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Loader.ManifestURL = url
	}
}
