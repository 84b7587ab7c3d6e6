package textutil

import (
	"math"
	"testing"
)

func TestNormalizeComposesAndTrims(t *testing.T) {
	decomposed := "  cafe\u0301 \n"
	if got := Normalize(decomposed); got != "caf\u00e9" {
		t.Fatalf("Normalize(%q) = %q, want %q", decomposed, got, "caf\u00e9")
	}
	if Normalize("cafe\u0301") != Normalize("caf\u00e9") {
		t.Fatal("expected composed and decomposed forms to compare equal")
	}
}

func TestNormalizeKeepsCompatibilityCharactersUnderNFC(t *testing.T) {
	if got := Normalize("\uff21"); got != "\uff21" {
		t.Fatalf("NFC should keep fullwidth A, got %q", got)
	}
	nfkc, err := ParseForm(FormNFKC)
	if err != nil {
		t.Fatalf("ParseForm: %v", err)
	}
	if got := nfkc.Normalize("\uff21"); got != "A" {
		t.Fatalf("NFKC should fold fullwidth A, got %q", got)
	}
}

func TestParseFormRejectsUnknown(t *testing.T) {
	if _, err := ParseForm("nfd"); err == nil {
		t.Fatal("expected error for unsupported form")
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two", 2},
		{" one\t two \n three ", 3},
		{"ಕನ್ನಡ ಪದ", 2},
	}
	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestRatcliffObershelp(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"world", "world", 1},
		{"abcd", "bcde", 0.75},
		{"xyz", "hello", 0},
		{"", "", 1},
		{"", "abc", 0},
	}
	for _, tt := range tests {
		got := RatcliffObershelp(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RatcliffObershelp(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatcliffObershelpCountsCodePoints(t *testing.T) {
	// Each Kannada letter is several bytes; scoring must be per code point.
	got := RatcliffObershelp("ನಮಸ್ಕಾರ", "ನಮಸ್ಕಾರ")
	if got != 1 {
		t.Fatalf("identical multibyte words scored %v", got)
	}
}

func TestJaroWinklerIdentical(t *testing.T) {
	if got := JaroWinkler("hello", "hello"); got != 1 {
		t.Fatalf("JaroWinkler(identical) = %v, want 1", got)
	}
	if got := JaroWinkler("", ""); got != 1 {
		t.Fatalf("JaroWinkler(empty) = %v, want 1", got)
	}
}

func TestMatcherBest(t *testing.T) {
	m := NewMatcher()
	match, score, ok := m.Best("world", []string{"hello", "world"})
	if !ok || match != "world" || score != 1 {
		t.Fatalf("Best = (%q, %v, %v), want (world, 1, true)", match, score, ok)
	}

	if _, _, ok := m.Best("xyz", []string{"hello", "world"}); ok {
		t.Fatal("expected no match for dissimilar target")
	}

	if _, _, ok := m.Best("word", nil); ok {
		t.Fatal("expected no match against empty candidates")
	}
}

func TestMatcherBestFuzzy(t *testing.T) {
	m := NewMatcher()
	match, _, ok := m.Best("wrld", []string{"hello", "world"})
	if !ok || match != "world" {
		t.Fatalf("Best(wrld) = (%q, %v), want world", match, ok)
	}
}

func TestMatcherThresholdIsInclusive(t *testing.T) {
	// "ab" vs "ac": one matching character of four total -> 0.5.
	m := NewMatcher()
	match, score, ok := m.Best("ab", []string{"ac"})
	if !ok || match != "ac" || score != 0.5 {
		t.Fatalf("Best at threshold = (%q, %v, %v), want (ac, 0.5, true)", match, score, ok)
	}
}

func TestMatcherTieKeepsEarliestCandidate(t *testing.T) {
	m := NewMatcher()
	match, _, ok := m.Best("cat", []string{"bat", "hat", "cat", "cat"})
	if !ok || match != "cat" {
		t.Fatalf("expected exact match, got %q", match)
	}
	match, _, ok = m.Best("at", []string{"bat", "hat"})
	if !ok || match != "bat" {
		t.Fatalf("expected earliest of tied candidates, got %q", match)
	}
}

func TestMatcherOptions(t *testing.T) {
	scorer, err := ParseScorer(ScorerJaroWinkler)
	if err != nil {
		t.Fatalf("ParseScorer: %v", err)
	}
	m := NewMatcher(WithScorer(scorer), WithThreshold(0.99))
	if m.Threshold() != 0.99 {
		t.Fatalf("Threshold = %v, want 0.99", m.Threshold())
	}
	if _, _, ok := m.Best("world", []string{"word"}); ok {
		t.Fatal("expected high threshold to reject near miss")
	}
	if _, err := ParseScorer("cosine"); err == nil {
		t.Fatal("expected error for unknown scorer")
	}
}
