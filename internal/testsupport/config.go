package testsupport

import (
	"path/filepath"
	"testing"

	"srtdiff/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a finalized config whose history database lives in a
// unique temp directory per test. Options run before finalization.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.History.Path = filepath.Join(base, "history", "history.db")
	cfgVal.Logging.Level = "info"
	cfgVal.Output.Color = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Finalize(); err != nil {
		t.Fatalf("finalize test config: %v", err)
	}
	return builder.cfg
}

// WithHistory enables the run history store.
func WithHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = true
	}
}

// WithFormat selects the report format.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithFoldCase enables case-insensitive word equality.
func WithFoldCase(language string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Alignment.FoldCase = true
		if language != "" {
			b.cfg.Alignment.Language = language
		}
	}
}

// WithMaxCells overrides the alignment matrix size guard.
func WithMaxCells(cells int64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Alignment.MaxCells = cells
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.History.Path))
}
