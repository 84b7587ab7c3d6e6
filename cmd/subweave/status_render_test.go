package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"subweave/internal/subtitles"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Track", statusWarn, "blank_cues: 1", false)
	want := fmt.Sprintf("%-*s %s", statusLabelWidth, "Track:", "[WARN] blank_cues: 1")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Track", statusOK, "no issues", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeIgnoresBuffers(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable([]string{"A", "B"}, [][]string{{"only"}}, []columnAlignment{alignLeft, alignRight})
	requireContains(t, out, "only")
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 5 {
		t.Fatalf("expected 5 table lines, got %d:\n%s", len(lines), out)
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}

func TestAlignStatusLines(t *testing.T) {
	tests := []struct {
		name  string
		stats subtitles.AlignStats
		want  []string
	}{
		{
			name:  "all matched",
			stats: subtitles.AlignStats{FineCues: 3, Matched: 3},
			want:  []string{"[OK] 3 of 3 word cues"},
		},
		{
			name:  "fallback and gaps",
			stats: subtitles.AlignStats{FineCues: 4, Matched: 1, Fallback: 1, DroppedFine: 2, SkippedCoarse: 1},
			want: []string{
				"[OK] 1 of 4 word cues",
				"[INFO] 1 word cues had no close match",
				"[WARN] 2 word cues start outside every caption",
				"[WARN] 1 captions contain no word cues",
			},
		},
		{
			name:  "nothing matched",
			stats: subtitles.AlignStats{FineCues: 2, Fallback: 2},
			want:  []string{"[ERROR] 0 of 2 word cues", "[INFO] 2 word cues had no close match"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := alignStatusLines(tt.stats, false)
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(tt.want))
			}
			for i, want := range tt.want {
				if !strings.HasSuffix(lines[i], want) {
					t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
				}
			}
		})
	}
}
