package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/config"
)

// EnvKeys lists the environment variables that override configuration.
var EnvKeys = []string{
	"PLAGCHECK_COSINE_WEIGHT",
	"PLAGCHECK_EDIT_WEIGHT",
	"PLAGCHECK_SEGMENTER",
	"PLAGCHECK_DICTIONARY",
	"PLAGCHECK_LOG_LEVEL",
	"PLAGCHECK_LOG_FORMAT",
}

// Isolate points HOME and the working directory at fresh temp directories and
// blanks every override variable, so no user configuration leaks into a test.
// It returns the temporary HOME.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range EnvKeys {
		t.Setenv(key, "")
	}
	return home
}

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns the default configuration with opts applied.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()
	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWeights overrides both metric weights.
func WithWeights(cosine, edit float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Weights.Cosine = cosine
		cfg.Weights.Edit = edit
	}
}

// WithSegmenter overrides the tokenizer mode.
func WithSegmenter(mode string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Segmenter.Mode = mode
	}
}

// WithLogLevel overrides the log level.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
