package subtitles

import (
	"strings"

	"subweave/internal/textutil"
)

// Marker wraps the highlighted word.
type Marker struct {
	Open  string
	Close string
}

// DefaultMarker is the HTML-style highlight used by JSON and YAML artifacts.
var DefaultMarker = Marker{Open: "<mark>", Close: "</mark>"}

func (m Marker) wrap(word string) string {
	return m.Open + word + m.Close
}

// AlignOptions configures an Aligner.
type AlignOptions struct {
	// Matcher picks the coarse word closest to each fine-grained cue.
	// Nil uses textutil.NewMatcher().
	Matcher *textutil.Matcher
	// Normalizer is applied to coarse and fine text. The zero value is NFC.
	Normalizer textutil.Normalizer
	// Marker wraps the matched word. Zero value uses DefaultMarker.
	Marker Marker
	// Positional marks the first equal word at or after the previous mark
	// within the same coarse cue instead of always the first equal word.
	Positional bool
}

// AlignStats summarizes one alignment run.
type AlignStats struct {
	CoarseCues    int `json:"coarse_cues"`
	FineCues      int `json:"fine_cues"`
	Records       int `json:"records"`
	Matched       int `json:"matched"`
	Fallback      int `json:"fallback"`
	SkippedCoarse int `json:"skipped_coarse"`
	DroppedFine   int `json:"dropped_fine"`
}

// Aligner maps word-level cues onto the words of coarse caption cues.
type Aligner struct {
	matcher    *textutil.Matcher
	normalizer textutil.Normalizer
	marker     Marker
	positional bool
}

// NewAligner builds an Aligner, filling unset options with defaults.
func NewAligner(opts AlignOptions) *Aligner {
	a := &Aligner{
		matcher:    opts.Matcher,
		normalizer: opts.Normalizer,
		marker:     opts.Marker,
		positional: opts.Positional,
	}
	if a.matcher == nil {
		a.matcher = textutil.NewMatcher()
	}
	if a.marker == (Marker{}) {
		a.marker = DefaultMarker
	}
	return a
}

// Align emits one HighlightRecord per fine cue whose Start lies inside a
// coarse cue's [Start, End] window, in coarse order then fine order. A fine
// cue inside overlapping coarse windows is emitted once per window.
//
// A matched fine cue yields the coarse words joined by spaces with one
// occurrence of the matched word wrapped, timed by the fine cue. An unmatched
// fine cue yields the normalized coarse text, timed by the coarse cue. Coarse
// cues containing no fine cue yield nothing.
func (a *Aligner) Align(coarse, fine Track) ([]HighlightRecord, AlignStats) {
	stats := AlignStats{CoarseCues: len(coarse), FineCues: len(fine)}
	records := make([]HighlightRecord, 0, len(fine))
	attributed := make([]bool, len(fine))

	for _, base := range coarse {
		baseText := a.normalizer.Normalize(base.Text)
		words := strings.Fields(baseText)
		candidates := make([]string, len(words))
		for i, w := range words {
			candidates[i] = a.normalizer.Normalize(w)
		}

		cursor := 0
		found := false
		for fi, word := range fine {
			if !base.Contains(word.Start) {
				continue
			}
			found = true
			attributed[fi] = true

			target := a.normalizer.Normalize(word.Text)
			match, _, ok := a.matcher.Best(target, candidates)
			if !ok {
				stats.Fallback++
				records = append(records, HighlightRecord{
					Start: base.Start,
					End:   base.End,
					Text:  baseText,
				})
				continue
			}

			at := a.markIndex(candidates, match, cursor)
			if a.positional {
				cursor = at + 1
			}
			stats.Matched++
			records = append(records, HighlightRecord{
				Start: word.Start,
				End:   word.End,
				Text:  a.render(words, at),
			})
		}
		if !found {
			stats.SkippedCoarse++
		}
	}

	for _, ok := range attributed {
		if !ok {
			stats.DroppedFine++
		}
	}
	stats.Records = len(records)
	return records, stats
}

// markIndex returns the word position to highlight. Outside positional mode
// this is the first equal word; in positional mode the first equal word at
// or after cursor, falling back to the first equal word.
func (a *Aligner) markIndex(candidates []string, match string, cursor int) int {
	first := -1
	for i, c := range candidates {
		if c != match {
			continue
		}
		if first == -1 {
			first = i
		}
		if !a.positional || i >= cursor {
			return i
		}
	}
	return first
}

func (a *Aligner) render(words []string, marked int) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == marked {
			b.WriteString(a.marker.wrap(w))
		} else {
			b.WriteString(w)
		}
	}
	return b.String()
}

// Align runs the default Aligner over coarse and fine.
func Align(coarse, fine Track) []HighlightRecord {
	records, _ := NewAligner(AlignOptions{}).Align(coarse, fine)
	return records
}
