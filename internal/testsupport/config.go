package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"rgadiag/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp log directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.Output.Color = config.ColorNever

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

// WithLanguage sets the report language on the test config.
func WithLanguage(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Language = lang
	}
}

// WithDisabledDetectors disables the named detectors on the test config.
func WithDisabledDetectors(types ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Engine.DisabledDetectors = append(b.cfg.Engine.DisabledDetectors, types...)
	}
}

// WithNormalization turns on config-level normalization to the reference mass.
func WithNormalization(reference int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Spectrum.Normalize = true
		b.cfg.Spectrum.ReferenceMass = reference
	}
}

// WithWorkers bounds engine concurrency on the test config.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Engine.Workers = n
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}

// WriteConfig stores cfg as TOML inside the config's temp directory and
// returns the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	return WriteFile(t, BaseDir(cfg), "rgadiag.toml", string(data))
}
