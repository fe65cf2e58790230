package config

import (
	"fmt"
	"math"

	"plagcheck/internal/failure"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWeights(); err != nil {
		return err
	}
	if err := c.validateNormalize(); err != nil {
		return err
	}
	if err := c.validateSegmenter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateWeights() error {
	for name, value := range map[string]float64{
		"weights.cosine": c.Weights.Cosine,
		"weights.edit":   c.Weights.Edit,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return invalid("%s must be a non-negative number, got %v", name, value)
		}
	}
	if c.Weights.Cosine == 0 && c.Weights.Edit == 0 {
		return invalid("weights.cosine and weights.edit cannot both be zero")
	}
	return nil
}

func (c *Config) validateNormalize() error {
	if c.Normalize.StopwordThreshold < 0 {
		return invalid("normalize.stopword_threshold must not be negative")
	}
	return nil
}

func (c *Config) validateSegmenter() error {
	switch c.Segmenter.Mode {
	case SegmenterDictionary, SegmenterRunes, SegmenterFields:
	default:
		return invalid("segmenter.mode: unsupported value %q (want %s, %s, or %s)",
			c.Segmenter.Mode, SegmenterDictionary, SegmenterRunes, SegmenterFields)
	}
	if c.Segmenter.Dictionary != "" && c.Segmenter.Mode != SegmenterDictionary {
		return invalid("segmenter.dictionary is only used when segmenter.mode is %q", SegmenterDictionary)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return failure.Wrap(failure.ErrConfiguration, "config", "validate", fmt.Sprintf(format, args...), nil)
}
