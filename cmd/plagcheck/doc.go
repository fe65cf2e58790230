// Package main hosts the plagcheck CLI entrypoint and command graph.
//
// The root command compares a source document against a candidate, prints the
// sub-scores and the blended score, and records the result in an output file.
// Configuration resolution, flag overrides, tokenizer selection, and logger
// setup live in commandContext so the commands themselves stay declarative.
//
// Scoring lives in internal/textsim; add behaviour there first and surface it
// here through flags or subcommands.
package main
