// Package failure defines the error markers shared by plagcheck packages.
//
// Callers wrap low-level errors with Wrap so messages carry the stage and
// operation that failed, while errors.Is still reports the marker for
// classification at the CLI boundary.
package failure
