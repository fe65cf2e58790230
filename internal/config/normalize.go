package config

import (
	"os"
	"strconv"
	"strings"

	"plagcheck/internal/failure"
)

const (
	envCosineWeight = "PLAGCHECK_COSINE_WEIGHT"
	envEditWeight   = "PLAGCHECK_EDIT_WEIGHT"
	envSegmenter    = "PLAGCHECK_SEGMENTER"
	envDictionary   = "PLAGCHECK_DICTIONARY"
	envLogLevel     = "PLAGCHECK_LOG_LEVEL"
	envLogFormat    = "PLAGCHECK_LOG_FORMAT"
)

func (c *Config) normalize() error {
	if err := c.normalizeWeights(); err != nil {
		return err
	}
	c.normalizeStopwords()
	if err := c.normalizeSegmenter(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWeights() error {
	if value, ok := lookupEnv(envCosineWeight); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, "config", envCosineWeight, "", err)
		}
		c.Weights.Cosine = parsed
	}
	if value, ok := lookupEnv(envEditWeight); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, "config", envEditWeight, "", err)
		}
		c.Weights.Edit = parsed
	}
	return nil
}

// Whitespace can never act as a stopword; normalization has already
// collapsed it.
func (c *Config) normalizeStopwords() {
	c.Normalize.Stopwords = strings.Join(strings.Fields(c.Normalize.Stopwords), "")
}

func (c *Config) normalizeSegmenter() error {
	if value, ok := lookupEnv(envSegmenter); ok {
		c.Segmenter.Mode = value
	}
	c.Segmenter.Mode = strings.ToLower(strings.TrimSpace(c.Segmenter.Mode))
	if c.Segmenter.Mode == "" {
		c.Segmenter.Mode = defaultSegmentMode
	}

	if value, ok := lookupEnv(envDictionary); ok {
		c.Segmenter.Dictionary = value
	}
	c.Segmenter.Dictionary = strings.TrimSpace(c.Segmenter.Dictionary)
	if c.Segmenter.Dictionary != "" {
		expanded, err := expandPath(c.Segmenter.Dictionary)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, "config", "segmenter.dictionary", "", err)
		}
		c.Segmenter.Dictionary = expanded
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := lookupEnv(envLogLevel); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv(envLogFormat); ok {
		c.Logging.Format = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
