// Package report presents comparison results.
//
// WriteFile persists the three-line result file; Render prints the same
// result to a terminal as plain text, a table, or JSON.
package report
