package textsim

// Vocabulary is the ordered set of distinct tokens drawn from two token
// sequences. Vectors built from the same Vocabulary are index-aligned.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// BuildVocabulary returns the union of a and b, enumerated in order of first
// appearance (all of a, then the new tokens of b).
func BuildVocabulary(a, b []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]string, 0, len(a)+len(b)),
		index: make(map[string]int, len(a)+len(b)),
	}
	for _, seq := range [][]string{a, b} {
		for _, token := range seq {
			if _, ok := v.index[token]; ok {
				continue
			}
			v.index[token] = len(v.terms)
			v.terms = append(v.terms, token)
		}
	}
	return v
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Terms returns a copy of the tokens in enumeration order.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// indexOf returns the vector position of token.
func (v *Vocabulary) indexOf(token string) (int, bool) {
	if v == nil {
		return 0, false
	}
	idx, ok := v.index[token]
	return idx, ok
}

// Vectorize counts the occurrences of each vocabulary token in seq. Tokens
// missing from the vocabulary are ignored.
func (v *Vocabulary) Vectorize(seq []string) []int {
	vector := make([]int, v.Len())
	if v == nil {
		return vector
	}
	for _, token := range seq {
		if idx, ok := v.indexOf(token); ok {
			vector[idx]++
		}
	}
	return vector
}

// TermFrequency counts each distinct token in seq.
func TermFrequency(seq []string) map[string]int {
	counts := make(map[string]int, len(seq))
	for _, token := range seq {
		counts[token]++
	}
	return counts
}
