package textsim

import (
	"strings"
	"unicode"
)

// Tokenizer segments normalized text into tokens. Implementations may return
// overlapping tokens and duplicates; Segment drops blank ones.
type Tokenizer interface {
	Segment(text string) []string
}

// TokenizerFunc adapts an ordinary function to the Tokenizer interface.
type TokenizerFunc func(text string) []string

// Segment calls f(text).
func (f TokenizerFunc) Segment(text string) []string {
	return f(text)
}

// Segment runs tok over text and keeps every token that is not empty or
// whitespace-only. Order, duplicates, and overlaps are preserved.
func Segment(tok Tokenizer, text string) []string {
	if text == "" || tok == nil {
		return []string{}
	}
	raw := tok.Segment(text)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		if strings.TrimSpace(token) == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// RuneTokenizer emits one token per non-space rune. It needs no dictionary and
// suits scripts without word boundaries when no lexicon is available.
type RuneTokenizer struct{}

// Segment implements Tokenizer.
func (RuneTokenizer) Segment(text string) []string {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}

// FieldsTokenizer splits text on whitespace.
type FieldsTokenizer struct{}

// Segment implements Tokenizer.
func (FieldsTokenizer) Segment(text string) []string {
	return strings.Fields(text)
}
