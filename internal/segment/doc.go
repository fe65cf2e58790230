// Package segment provides dictionary-driven word segmentation for scripts
// written without spaces between words.
//
// Dictionary wraps a gse segmenter in exhaustive mode: every dictionary word
// starting at every position of a Han run is emitted, so tokens overlap. Latin
// and other letter or digit runs bypass the lexicon and stay whole. The embedded
// Chinese lexicon is loaded once per process and shared read-only.
package segment
