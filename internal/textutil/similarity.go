package textutil

import (
	"github.com/antzucaro/matchr"
	"github.com/pmezard/go-difflib/difflib"
)

// RatcliffObershelp returns 2*M/T over the code points of a and b, where M is
// the number of characters in matching blocks and T the total length. Two
// empty strings score 1.
func RatcliffObershelp(a, b string) float64 {
	return difflib.NewMatcher(codePoints(a), codePoints(b)).Ratio()
}

// JaroWinkler returns the Jaro-Winkler similarity of a and b.
func JaroWinkler(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	return matchr.JaroWinkler(a, b, false)
}

func codePoints(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
