package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"plagcheck/internal/config"
	"plagcheck/internal/logging"
	"plagcheck/internal/segment"
	"plagcheck/internal/textsim"
)

type rootFlags struct {
	config       string
	segmenter    string
	dictionary   string
	format       string
	cosineWeight float64
	editWeight   float64
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
	logErr     error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and layers command-line flags on
// top of it. Flags win over the file and the environment, and validation runs
// on the merged result.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Read(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("cosine-weight") {
		cfg.Weights.Cosine = c.flags.cosineWeight
	}
	if flags.Changed("edit-weight") {
		cfg.Weights.Edit = c.flags.editWeight
	}
	if mode := strings.ToLower(strings.TrimSpace(c.flags.segmenter)); mode != "" {
		cfg.Segmenter.Mode = mode
		if mode != config.SegmenterDictionary {
			cfg.Segmenter.Dictionary = ""
		}
	}
	if dict := strings.TrimSpace(c.flags.dictionary); dict != "" {
		expanded, err := config.ExpandPath(dict)
		if err != nil {
			return fmt.Errorf("resolve dictionary path: %w", err)
		}
		cfg.Segmenter.Dictionary = expanded
	}
	return nil
}

func (c *commandContext) configValue() *config.Config {
	if c.config == nil {
		cfg := config.Default()
		return &cfg
	}
	return c.config
}

func (c *commandContext) logger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.log, c.logErr = logging.NewFromConfig(c.configValue())
	})
	return c.log, c.logErr
}

func (c *commandContext) tokenizer() (textsim.Tokenizer, error) {
	cfg := c.configValue()
	switch cfg.Segmenter.Mode {
	case config.SegmenterRunes:
		return textsim.RuneTokenizer{}, nil
	case config.SegmenterFields:
		return textsim.FieldsTokenizer{}, nil
	default:
		return segment.Load(cfg.Segmenter.Dictionary)
	}
}

func (c *commandContext) comparer(logger *slog.Logger) (*textsim.Comparer, error) {
	tok, err := c.tokenizer()
	if err != nil {
		return nil, err
	}
	cfg := c.configValue()
	return textsim.NewComparer(tok,
		textsim.WithProfile(cfg.Profile()),
		textsim.WithWeights(cfg.TextWeights()),
		textsim.WithLogger(logger),
	), nil
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
