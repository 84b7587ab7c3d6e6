// Package textutil provides the text normalization and fuzzy word matching
// used when comparing subtitle text.
//
// The primary use cases are:
//   - Canonicalizing text (Unicode composition plus whitespace trimming)
//     before any comparison or word count
//   - Splitting normalized text into whitespace-delimited words
//   - Scoring word similarity and picking the single best candidate above a
//     threshold
//
// Similarity defaults to a Ratcliff/Obershelp ratio computed over code
// points with go-difflib. Jaro-Winkler is available as an alternative scorer.
package textutil
