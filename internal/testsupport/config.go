package testsupport

import (
	"path/filepath"
	"testing"

	"watchnext/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with a unique temp history path per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.History.Path = filepath.Join(base, "history.db")

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithPlayerCommand overrides the player binary on the test config.
func WithPlayerCommand(command string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Player.Command = command
	}
}

// WithStrictSubtitles switches the matcher to the strict subtitle policy.
func WithStrictSubtitles() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matcher.SubtitlePolicy = config.SubtitlePolicyStrict
	}
}

// WithHistoryDisabled turns the history journal off on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}
