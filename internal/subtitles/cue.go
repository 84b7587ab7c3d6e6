package subtitles

// Cue is a single timed text unit. Start and End are milliseconds from the
// start of the track.
type Cue struct {
	Index int
	Start int64
	End   int64
	Text  string
}

// Duration returns End - Start in milliseconds.
func (c Cue) Duration() int64 {
	return c.End - c.Start
}

// Contains reports whether ms lies inside [Start, End].
func (c Cue) Contains(ms int64) bool {
	return ms >= c.Start && ms <= c.End
}

// Track is an ordered sequence of cues, expected in ascending Start order.
type Track []Cue

// Sorted reports whether cues are in non-decreasing Start order.
func (t Track) Sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i].Start < t[i-1].Start {
			return false
		}
	}
	return true
}

// Bounds returns the first Start and the last End of the track.
func (t Track) Bounds() (start, end int64, ok bool) {
	if len(t) == 0 {
		return 0, 0, false
	}
	return t[0].Start, t[len(t)-1].End, true
}

// Reindex returns a copy of the track numbered sequentially from 1.
func (t Track) Reindex() Track {
	out := make(Track, len(t))
	for i, cue := range t {
		cue.Index = i + 1
		out[i] = cue
	}
	return out
}

// HighlightRecord is one entry of the alignment artifact: the coarse caption
// text with at most one word wrapped in a highlight marker, shown for
// [Start, End].
type HighlightRecord struct {
	Start int64  `json:"start" yaml:"start"`
	End   int64  `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
}
