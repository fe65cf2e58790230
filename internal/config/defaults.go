package config

import "plagcheck/internal/textsim"

const (
	defaultConfigPath  = "~/.config/plagcheck/config.toml"
	projectConfigFile  = "plagcheck.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultSegmentMode = SegmenterDictionary
)

// Segmenter modes.
const (
	SegmenterDictionary = "dictionary"
	SegmenterRunes      = "runes"
	SegmenterFields     = "fields"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Weights: Weights{
			Cosine: textsim.DefaultCosineWeight,
			Edit:   textsim.DefaultEditWeight,
		},
		Normalize: Normalize{
			StopwordThreshold: textsim.DefaultStopwordThreshold,
			Stopwords:         textsim.DefaultStopwords,
		},
		Segmenter: Segmenter{
			Mode: defaultSegmentMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
