package textsim

import (
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// DefaultCosineWeight is the share of the final score taken from cosine similarity.
	DefaultCosineWeight = 0.7
	// DefaultEditWeight is the share of the final score taken from edit similarity.
	DefaultEditWeight = 0.3
)

// CosineSimilarity computes the cosine of the angle between two term vectors.
// Returns 0 if either vector has zero magnitude. Only the common prefix of the
// two vectors contributes to the dot product.
func CosineSimilarity(a, b []int) float64 {
	var dot, normA, normB float64
	for i := range min(len(a), len(b)) {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, x := range a {
		normA += float64(x) * float64(x)
	}
	for _, x := range b {
		normB += float64(x) * float64(x)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}

// EditSimilarity scores two strings by rune-level Levenshtein distance scaled
// by the longer length: 1 - distance/maxLen. Two empty strings score 1.
func EditSimilarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

// Weights sets how much each metric contributes to the combined score. The
// weights are not required to sum to one.
type Weights struct {
	Cosine float64 `json:"cosine"`
	Edit   float64 `json:"edit"`
}

// DefaultWeights returns the stock 0.7 cosine / 0.3 edit split.
func DefaultWeights() Weights {
	return Weights{Cosine: DefaultCosineWeight, Edit: DefaultEditWeight}
}

// Combine blends the two sub-scores.
func (w Weights) Combine(cosine, edit float64) float64 {
	return w.Cosine*cosine + w.Edit*edit
}
