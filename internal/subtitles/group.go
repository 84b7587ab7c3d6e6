package subtitles

import (
	"fmt"
	"strings"

	"subweave/internal/services"
	"subweave/internal/textutil"
)

// GroupOptions controls how consecutive cues are merged.
type GroupOptions struct {
	// LinesPerGroup is the maximum number of source cues per output cue.
	LinesPerGroup int
	// MinWords is the inclusive word count at or below which an absorbed cue
	// is joined with a space instead of a line break.
	MinWords int
	// Normalizer is applied before counting words. The zero value is NFC.
	Normalizer textutil.Normalizer
}

// Validate rejects thresholds outside their ranges.
func (o GroupOptions) Validate() error {
	if o.LinesPerGroup < 1 {
		return services.Wrap(services.ErrValidation, "grouping", "options",
			fmt.Sprintf("lines_per_group must be >= 1, got %d", o.LinesPerGroup), nil)
	}
	if o.MinWords < 0 {
		return services.Wrap(services.ErrValidation, "grouping", "options",
			fmt.Sprintf("min_words must be >= 0, got %d", o.MinWords), nil)
	}
	return nil
}

// Group merges runs of up to LinesPerGroup consecutive cues. Each merged cue
// spans its first cue's Start to its last cue's End; absorbed text is joined
// with a space when its word count is <= MinWords and with a line break
// otherwise. A trailing partial group is emitted as-is. The result is
// numbered from 1.
func Group(track Track, opts GroupOptions) (Track, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	capacity := len(track)
	if opts.LinesPerGroup > 1 {
		capacity = len(track)/opts.LinesPerGroup + 1
	}
	out := make(Track, 0, capacity)
	for i := 0; i < len(track); {
		seed := track[i]
		var text strings.Builder
		text.WriteString(strings.TrimSpace(seed.Text))
		end := seed.End

		count := 1
		for count < opts.LinesPerGroup && i+count < len(track) {
			next := track[i+count]
			if opts.Normalizer.WordCount(next.Text) <= opts.MinWords {
				text.WriteByte(' ')
			} else {
				text.WriteByte('\n')
			}
			text.WriteString(strings.TrimSpace(next.Text))
			end = next.End
			count++
		}

		out = append(out, Cue{
			Index: len(out) + 1,
			Start: seed.Start,
			End:   end,
			Text:  text.String(),
		})
		i += count
	}
	return out, nil
}
