// Package textsim scores how similar two documents are for plagiarism checks.
//
// A comparison runs in a fixed order:
//   - Normalize strips punctuation, collapses whitespace, and drops stopword
//     runes from long documents
//   - a Tokenizer segments each normalized text into overlapping tokens
//   - BuildVocabulary and Vectorize turn both token sequences into
//     index-aligned term-frequency vectors
//   - CosineSimilarity and EditSimilarity score the pair and Weights blends
//     the two into one value
//
// The package works on in-memory strings only. Reading files, parsing flags,
// and writing reports belong to callers.
package textsim
