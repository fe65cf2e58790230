// Package logging assembles structured slog loggers used across plagcheck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line of one run carries the
// same correlation ID. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
