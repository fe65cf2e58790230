package segment

import (
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/go-ego/gse"

	"plagcheck/internal/failure"
)

// EmbeddedSource names the built-in lexicon in logs and diagnostics.
const EmbeddedSource = "embedded"

// Dictionary segments text against a loaded lexicon. It is safe for concurrent
// use once constructed.
type Dictionary struct {
	seg    gse.Segmenter
	source string
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the process-wide Dictionary backed by the embedded lexicon.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = load("")
	})
	return defaultDict, defaultErr
}

// Load returns a Dictionary for the lexicon file at path. An empty path
// selects the shared embedded lexicon.
func Load(path string) (*Dictionary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	return load(path)
}

func load(path string) (*Dictionary, error) {
	d := &Dictionary{source: EmbeddedSource}
	var err error
	if path == "" {
		err = d.seg.LoadDictEmbed()
	} else {
		d.source = path
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "segment", "stat dictionary", path, statErr)
		}
		err = d.seg.LoadDict(path)
	}
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "segment", "load dictionary", d.source, err)
	}
	return d, nil
}

// Source reports where the lexicon came from.
func (d *Dictionary) Source() string {
	return d.source
}

// Segment returns every dictionary word found at every position of each Han
// run in text. Runs of letters, digits, '+' and '#' outside the Han block are
// kept whole with their case intact. Every other rune separates tokens.
func (d *Dictionary) Segment(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	for _, r := range splitRuns(text) {
		if r.kind == runHan {
			tokens = append(tokens, d.seg.CutAll(r.text)...)
			continue
		}
		tokens = append(tokens, r.text)
	}
	return tokens
}

type runKind int

const (
	runSkip runKind = iota
	runHan
	runWord
)

type run struct {
	text string
	kind runKind
}

// splitRuns groups text into maximal Han and word runs, dropping separators.
func splitRuns(text string) []run {
	var runs []run
	start, kind := 0, runSkip
	flush := func(end int) {
		if kind != runSkip && end > start {
			runs = append(runs, run{text: text[start:end], kind: kind})
		}
	}
	for i, r := range text {
		k := classify(r)
		if k == kind {
			continue
		}
		flush(i)
		start, kind = i, k
	}
	flush(len(text))
	return runs
}

func classify(r rune) runKind {
	switch {
	case r >= 0x4E00 && r <= 0x9FD5:
		return runHan
	case r == '+' || r == '#' || unicode.IsLetter(r) || unicode.IsNumber(r):
		return runWord
	default:
		return runSkip
	}
}
