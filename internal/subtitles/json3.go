package subtitles

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"subweave/internal/services"
)

// defaultWordDurationMs is used for the last word when no later event exists.
const defaultWordDurationMs = 500

// json3Payload is the YouTube json3 caption structure: events carry an
// absolute start, segments carry an offset from their event.
type json3Payload struct {
	Events []json3Event `json:"events"`
}

type json3Event struct {
	TStartMs    *int64         `json:"tStartMs,omitempty"`
	DDurationMs *int64         `json:"dDurationMs,omitempty"`
	Segs        []json3Segment `json:"segs,omitempty"`
}

type json3Segment struct {
	UTF8      string `json:"utf8"`
	TOffsetMs *int64 `json:"tOffsetMs,omitempty"`
}

func (e json3Event) start() int64 {
	if e.TStartMs == nil {
		return 0
	}
	return *e.TStartMs
}

func (s json3Segment) offset() int64 {
	if s.TOffsetMs == nil {
		return 0
	}
	return *s.TOffsetMs
}

// ParseJSON3 converts a json3 caption payload into a word-level track.
//
// Each non-blank segment becomes one cue starting at event start + segment
// offset. It ends at the next segment of the same event, else at the first
// later event that starts after it, else 500ms after it starts.
func ParseJSON3(r io.Reader) (Track, error) {
	var payload json3Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrParse, "subtitles", "decode json3", "", err)
	}

	var track Track
	for _, event := range payload.Events {
		base := event.start()
		for i, seg := range event.Segs {
			word := strings.TrimSpace(seg.UTF8)
			if word == "" {
				continue
			}
			start := base + seg.offset()
			var end int64
			if i+1 < len(event.Segs) {
				end = base + event.Segs[i+1].offset()
			} else if next, ok := nextEventStart(payload.Events, start); ok {
				end = next
			} else {
				end = start + defaultWordDurationMs
			}
			if end < start {
				end = start
			}
			track = append(track, Cue{
				Index: len(track) + 1,
				Start: start,
				End:   end,
				Text:  word,
			})
		}
	}
	return track, nil
}

func nextEventStart(events []json3Event, after int64) (int64, bool) {
	for _, e := range events {
		if e.TStartMs != nil && *e.TStartMs > after {
			return *e.TStartMs, true
		}
	}
	return 0, false
}

// ReadJSON3 loads a json3 caption file as a word-level track.
func ReadJSON3(path string) (Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError("open json3", path, err)
	}
	defer file.Close()
	return ParseJSON3(file)
}
