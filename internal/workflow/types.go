package workflow

import (
	"time"

	"subweave/internal/subtitles"
)

// Result summarizes one executed operation.
type Result struct {
	Operation  string                `json:"operation"`
	Input      string                `json:"input"`
	Words      string                `json:"words,omitempty"`
	Output     string                `json:"output"`
	Format     string                `json:"format,omitempty"`
	InputCues  int                   `json:"input_cues"`
	OutputCues int                   `json:"output_cues"`
	Align      *subtitles.AlignStats `json:"align,omitempty"`
	Elapsed    time.Duration         `json:"-"`
}

// Summary is the outcome of a batch run.
type Summary struct {
	RunID   string   `json:"run_id"`
	Results []Result `json:"results"`
}
