package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalization form names accepted by ParseForm.
const (
	FormNFC  = "nfc"
	FormNFKC = "nfkc"
)

// Normalizer canonicalizes text before comparison.
type Normalizer struct {
	form norm.Form
}

// DefaultNormalizer applies canonical composition (NFC).
var DefaultNormalizer = Normalizer{form: norm.NFC}

// ParseForm returns a Normalizer for "nfc" or "nfkc". Empty selects NFC.
func ParseForm(name string) (Normalizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormNFC:
		return Normalizer{form: norm.NFC}, nil
	case FormNFKC:
		return Normalizer{form: norm.NFKC}, nil
	default:
		return Normalizer{}, fmt.Errorf("unsupported normalization form %q", name)
	}
}

// Normalize applies the Unicode form and trims surrounding whitespace.
func (n Normalizer) Normalize(s string) string {
	return strings.TrimSpace(n.form.String(s))
}

// Words splits normalized text on whitespace runs.
func (n Normalizer) Words(s string) []string {
	return strings.Fields(n.Normalize(s))
}

// WordCount returns the number of non-empty words in normalized text.
func (n Normalizer) WordCount(s string) int {
	return len(n.Words(s))
}

// Normalize applies NFC composition and trims surrounding whitespace.
func Normalize(s string) string {
	return DefaultNormalizer.Normalize(s)
}

// Words splits NFC-normalized text on whitespace runs.
func Words(s string) []string {
	return DefaultNormalizer.Words(s)
}

// WordCount counts the words of NFC-normalized text.
func WordCount(s string) int {
	return DefaultNormalizer.WordCount(s)
}
