package textsim

import (
	"log/slog"
)

const (
	SideSource    = "source"
	SideCandidate = "candidate"
)

// Result carries the combined score, both sub-scores, and the sizes that fed them.
type Result struct {
	Score           float64 `json:"score"`
	Cosine          float64 `json:"cosine"`
	Edit            float64 `json:"edit"`
	Weights         Weights `json:"weights"`
	SourceRunes     int     `json:"source_runes"`
	CandidateRunes  int     `json:"candidate_runes"`
	SourceTokens    int     `json:"source_tokens"`
	CandidateTokens int     `json:"candidate_tokens"`
	VocabularySize  int     `json:"vocabulary_size"`
}

// Comparer runs the full scoring pipeline for document pairs. A Comparer holds
// no per-comparison state and may be shared between goroutines as long as its
// Tokenizer allows concurrent reads.
type Comparer struct {
	tokenizer Tokenizer
	profile   Profile
	weights   Weights
	logger    *slog.Logger
}

// Option customizes a Comparer.
type Option func(*Comparer)

// WithProfile overrides the normalization profile.
func WithProfile(p Profile) Option {
	return func(c *Comparer) {
		c.profile = p
	}
}

// WithWeights overrides the metric weights.
func WithWeights(w Weights) Option {
	return func(c *Comparer) {
		c.weights = w
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Comparer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewComparer builds a Comparer around tok using the default profile and weights.
func NewComparer(tok Tokenizer, opts ...Option) *Comparer {
	c := &Comparer{
		tokenizer: tok,
		profile:   DefaultProfile(),
		weights:   DefaultWeights(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weights returns the weights used by Compare.
func (c *Comparer) Weights() Weights {
	return c.weights
}

// Compare scores candidate against source. It fails with an *EmptyInputError
// before any segmentation when either document normalizes to an empty string.
func (c *Comparer) Compare(source, candidate string) (Result, error) {
	normSource := c.profile.Normalize(source)
	normCandidate := c.profile.Normalize(candidate)
	if normSource == "" {
		return Result{}, &EmptyInputError{Side: SideSource}
	}
	if normCandidate == "" {
		return Result{}, &EmptyInputError{Side: SideCandidate}
	}

	sourceTokens := Segment(c.tokenizer, normSource)
	candidateTokens := Segment(c.tokenizer, normCandidate)

	vocab := BuildVocabulary(sourceTokens, candidateTokens)
	cosine := CosineSimilarity(vocab.Vectorize(sourceTokens), vocab.Vectorize(candidateTokens))
	edit := EditSimilarity(normSource, normCandidate)

	result := Result{
		Score:           c.weights.Combine(cosine, edit),
		Cosine:          cosine,
		Edit:            edit,
		Weights:         c.weights,
		SourceRunes:     len([]rune(normSource)),
		CandidateRunes:  len([]rune(normCandidate)),
		SourceTokens:    len(sourceTokens),
		CandidateTokens: len(candidateTokens),
		VocabularySize:  vocab.Len(),
	}
	c.logger.Debug("documents compared",
		slog.Float64("cosine", cosine),
		slog.Float64("edit", edit),
		slog.Float64("score", result.Score),
		slog.Int("source_tokens", result.SourceTokens),
		slog.Int("candidate_tokens", result.CandidateTokens),
		slog.Int("vocabulary_size", result.VocabularySize),
	)
	return result, nil
}

// CombinedSimilarity is the single-call form of Comparer.Compare using the
// default normalization profile.
func CombinedSimilarity(source, candidate string, tok Tokenizer, w Weights) (float64, error) {
	result, err := NewComparer(tok, WithWeights(w)).Compare(source, candidate)
	if err != nil {
		return 0, err
	}
	return result.Score, nil
}
