package textsim

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultStopwordThreshold is the rune count above which stopwords are removed.
	DefaultStopwordThreshold = 800
	// DefaultStopwords lists the single-rune stopwords removed from long documents.
	DefaultStopwords = "的了是很我有和也吧啊你他她"
)

// Profile tunes the stopword pass of normalization. Documents whose normalized
// rune count exceeds StopwordThreshold lose every rune listed in Stopwords.
type Profile struct {
	StopwordThreshold int
	Stopwords         string
}

// DefaultProfile returns the stock threshold and stopword set.
func DefaultProfile() Profile {
	return Profile{
		StopwordThreshold: DefaultStopwordThreshold,
		Stopwords:         DefaultStopwords,
	}
}

// Normalize applies DefaultProfile to text.
func Normalize(text string) string {
	return DefaultProfile().Normalize(text)
}

// Normalize removes every rune that is neither a word rune nor whitespace,
// collapses whitespace runs into one space, trims the ends, and strips
// stopwords when the result is longer than the profile threshold. Stopword
// removal is rune-level and is not followed by another trim.
func (p Profile) Normalize(text string) string {
	if text == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if isWordRune(r) || isSpace(r) {
			return r
		}
		return -1
	}, text)
	collapsed := strings.Join(strings.FieldsFunc(stripped, isSpace), " ")

	if p.Stopwords == "" || utf8.RuneCountInString(collapsed) <= p.StopwordThreshold {
		return collapsed
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(p.Stopwords, r) {
			return -1
		}
		return r
	}, collapsed)
}

// isWordRune reports whether r is a letter, a number, or an underscore in any script.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace extends unicode.IsSpace with the file, group, record and unit
// separators U+001C to U+001F, which also delimit words.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}
