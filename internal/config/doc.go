// Package config loads, normalizes, and validates plagcheck configuration.
//
// It supplies defaults, expands user paths, reads TOML files, loads a .env
// file from the working directory, and applies PLAGCHECK_* environment
// overrides. Always obtain settings through this package so the scoring
// pipeline receives validated weights and a known segmenter mode.
package config
