package textutil

import (
	"fmt"
	"strings"
)

// DefaultThreshold is the minimum similarity a candidate needs to match.
const DefaultThreshold = 0.5

// Scorer names accepted by ParseScorer.
const (
	ScorerRatcliff    = "ratcliff"
	ScorerJaroWinkler = "jaro_winkler"
)

// Scorer rates the similarity of two strings on a 0-1 scale.
type Scorer func(candidate, target string) float64

// ParseScorer maps a configured scorer name to its implementation. Empty
// selects Ratcliff/Obershelp.
func ParseScorer(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ScorerRatcliff:
		return RatcliffObershelp, nil
	case ScorerJaroWinkler:
		return JaroWinkler, nil
	default:
		return nil, fmt.Errorf("unsupported similarity scorer %q", name)
	}
}

// MatchOption configures a Matcher.
type MatchOption func(*Matcher)

// WithScorer replaces the similarity function.
func WithScorer(scorer Scorer) MatchOption {
	return func(m *Matcher) {
		if scorer != nil {
			m.scorer = scorer
		}
	}
}

// WithThreshold sets the minimum accepted score. Default: 0.5.
func WithThreshold(threshold float64) MatchOption {
	return func(m *Matcher) {
		m.threshold = threshold
	}
}

// Matcher picks the closest candidate word for a target word. It is
// read-only after construction and safe for concurrent use.
type Matcher struct {
	scorer    Scorer
	threshold float64
}

// NewMatcher returns a Matcher using Ratcliff/Obershelp at threshold 0.5
// unless overridden.
func NewMatcher(opts ...MatchOption) *Matcher {
	m := &Matcher{
		scorer:    RatcliffObershelp,
		threshold: DefaultThreshold,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Threshold reports the minimum accepted score.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Best returns the highest scoring candidate when its score reaches the
// threshold. Among equal scores the earliest candidate wins.
func (m *Matcher) Best(target string, candidates []string) (string, float64, bool) {
	bestIdx := -1
	bestScore := 0.0
	for i, candidate := range candidates {
		score := m.scorer(candidate, target)
		if score < m.threshold {
			continue
		}
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	if bestIdx == -1 {
		return "", 0, false
	}
	return candidates[bestIdx], bestScore, true
}
