package textsim

import (
	"math"
	"strings"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want float64
	}{
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, 1},
		{"orthogonal", []int{1, 0}, []int{0, 1}, 0},
		{"zero vector", []int{0, 0}, []int{1, 2}, 0},
		{"both zero", []int{0, 0}, []int{0, 0}, 0},
		{"empty", nil, nil, 0},
		{"partial", []int{1, 1, 0}, []int{1, 2, 0}, 3 / math.Sqrt(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosineSimilarity(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdenticalIsExact(t *testing.T) {
	vectors := [][]int{
		{1, 2, 3},
		{7},
		{3, 0, 5, 11, 2},
		{100, 1, 1, 1},
	}
	for _, v := range vectors {
		if got := CosineSimilarity(v, v); got != 1.0 {
			t.Errorf("CosineSimilarity(%v, itself) = %v, want exactly 1.0", v, got)
		}
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := []int{3, 0, 2, 1}
	b := []int{1, 4, 0, 2}
	if ab, ba := CosineSimilarity(a, b), CosineSimilarity(b, a); ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestEditSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"both empty", "", "", 1},
		{"one empty", "", "测试", 0},
		{"other empty", "X", "", 0},
		{"identical", "测试文本", "测试文本", 1},
		{"disjoint same length", "abc", "def", 0},
		{"one substitution", "测试文本", "测试文档", 0.75},
		{"runes not bytes", "文本", "文", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EditSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEditSimilarityBounds(t *testing.T) {
	samples := []string{"", "a", "ab", "kitten", "sitting", "这是一段用于测试的文本内容", strings.Repeat("z", 40)}
	for _, a := range samples {
		for _, b := range samples {
			got := EditSimilarity(a, b)
			if got < 0 || got > 1 {
				t.Errorf("EditSimilarity(%q, %q) = %v out of [0,1]", a, b, got)
			}
		}
		if got := EditSimilarity(a, a); got != 1 {
			t.Errorf("EditSimilarity(%q, itself) = %v", a, got)
		}
	}
}

func TestWeightsCombine(t *testing.T) {
	w := DefaultWeights()
	if w.Cosine != 0.7 || w.Edit != 0.3 {
		t.Fatalf("unexpected defaults %+v", w)
	}
	if got := w.Combine(0.5, 1); math.Abs(got-0.65) > 1e-12 {
		t.Fatalf("Combine() = %v, want 0.65", got)
	}
	custom := Weights{Cosine: 2, Edit: 1}
	if got := custom.Combine(1, 1); got != 3 {
		t.Fatalf("weights are not normalized, Combine() = %v, want 3", got)
	}
}
