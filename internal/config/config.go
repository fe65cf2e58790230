package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/failure"
	"plagcheck/internal/textsim"
)

//go:embed sample_config.toml
var sampleConfig string

// Weights contains the blend applied to the two similarity metrics.
type Weights struct {
	Cosine float64 `toml:"cosine"`
	Edit   float64 `toml:"edit"`
}

// Normalize contains the stopword pass applied to long documents.
type Normalize struct {
	// StopwordThreshold is the rune count above which stopwords are removed. Default: 800
	StopwordThreshold int `toml:"stopword_threshold"`
	// Stopwords lists single-rune stopwords. An empty string disables the pass.
	Stopwords string `toml:"stopwords"`
}

// Segmenter selects how normalized text is split into tokens.
type Segmenter struct {
	// Mode is one of "dictionary", "runes", or "fields".
	Mode string `toml:"mode"`
	// Dictionary is an optional lexicon file for dictionary mode. Empty uses
	// the embedded lexicon.
	Dictionary string `toml:"dictionary"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for plagcheck.
type Config struct {
	Weights   Weights   `toml:"weights"`
	Normalize Normalize `toml:"normalize"`
	Segmenter Segmenter `toml:"segmenter"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the resolved path, and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg, resolvedPath, exists, err := Read(path)
	if err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return cfg, resolvedPath, exists, nil
}

// Read is Load without the final Validate call, for callers that layer more
// overrides on top before validating.
func Read(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, failure.Wrap(failure.ErrConfiguration, "config", "open", resolvedPath, err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, failure.Wrap(failure.ErrConfiguration, "config", "parse", resolvedPath, err)
		}
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, failure.Wrap(failure.ErrConfiguration, "config", "resolve", "config file not found: "+expanded, err)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigFile)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// TextWeights returns the metric weights in the form the scoring pipeline uses.
func (c *Config) TextWeights() textsim.Weights {
	return textsim.Weights{Cosine: c.Weights.Cosine, Edit: c.Weights.Edit}
}

// Profile returns the normalization profile.
func (c *Config) Profile() textsim.Profile {
	return textsim.Profile{
		StopwordThreshold: c.Normalize.StopwordThreshold,
		Stopwords:         c.Normalize.Stopwords,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
