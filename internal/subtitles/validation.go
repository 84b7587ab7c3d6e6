package subtitles

import (
	"fmt"

	"subweave/internal/textutil"
)

// TrackReport summarizes a loaded track.
type TrackReport struct {
	Cues   int      `json:"cues"`
	Words  int      `json:"words"`
	Start  int64    `json:"start_ms"`
	End    int64    `json:"end_ms"`
	Issues []string `json:"issues,omitempty"`
}

// InspectTrack checks a track for ordering and timing issues. Returns a
// report whose Issues slice is empty when the track looks well-formed.
func InspectTrack(track Track) TrackReport {
	report := TrackReport{Cues: len(track)}
	if len(track) == 0 {
		report.Issues = append(report.Issues, "empty_track")
		return report
	}
	report.Start, report.End, _ = track.Bounds()

	var unsorted, overlapping, zero, blank int
	for i, cue := range track {
		report.Words += textutil.WordCount(cue.Text)
		if cue.End > report.End {
			report.End = cue.End
		}
		if cue.Start < report.Start {
			report.Start = cue.Start
		}
		if cue.Duration() == 0 {
			zero++
		}
		if textutil.Normalize(cue.Text) == "" {
			blank++
		}
		if i == 0 {
			continue
		}
		prev := track[i-1]
		if cue.Start < prev.Start {
			unsorted++
		} else if cue.Start < prev.End {
			overlapping++
		}
	}

	if unsorted > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("unsorted_cues: %d", unsorted))
	}
	if overlapping > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("overlapping_cues: %d", overlapping))
	}
	if zero > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("zero_duration_cues: %d", zero))
	}
	if blank > 0 {
		report.Issues = append(report.Issues, fmt.Sprintf("blank_cues: %d", blank))
	}
	return report
}
