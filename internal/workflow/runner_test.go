package workflow_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subweave/internal/config"
	"subweave/internal/logging"
	"subweave/internal/services"
	"subweave/internal/subtitles"
	"subweave/internal/workflow"
)

const coarseSRT = `1
00:00:00,000 --> 00:00:02,000
hello world

2
00:00:02,000 --> 00:00:04,000
good night moon
`

const wordsSRT = `1
00:00:00,100 --> 00:00:00,600
hello

2
00:00:01,000 --> 00:00:01,200
world

3
00:00:02,500 --> 00:00:02,900
xyz

4
00:00:09,000 --> 00:00:09,500
late
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newRunner(t *testing.T) *workflow.Runner {
	t.Helper()
	cfg := config.Default()
	return workflow.NewRunner(&cfg, logging.NewNop())
}

func TestRunnerAlign(t *testing.T) {
	dir := t.TempDir()
	coarse := writeFile(t, dir, "coarse.srt", coarseSRT)
	words := writeFile(t, dir, "words.srt", wordsSRT)
	output := filepath.Join(dir, "out", "highlights.json")

	result, err := newRunner(t).Align(context.Background(), coarse, words, output, "")
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if result.Format != subtitles.FormatJSON || result.OutputCues != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Align == nil || result.Align.Matched != 2 || result.Align.Fallback != 1 || result.Align.DroppedFine != 1 {
		t.Fatalf("unexpected stats: %+v", result.Align)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	records, err := subtitles.DecodeHighlights(file, subtitles.FormatJSON)
	if err != nil {
		t.Fatalf("DecodeHighlights: %v", err)
	}
	want := []subtitles.HighlightRecord{
		{Start: 100, End: 600, Text: "<mark>hello</mark> world"},
		{Start: 1000, End: 1200, Text: "hello <mark>world</mark>"},
		{Start: 2000, End: 4000, Text: "good night moon"},
	}
	if len(records) != len(want) {
		t.Fatalf("records = %+v", records)
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestRunnerAlignInfersFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	coarse := writeFile(t, dir, "coarse.srt", coarseSRT)
	words := writeFile(t, dir, "words.srt", wordsSRT)
	output := filepath.Join(dir, "highlights.ass")

	result, err := newRunner(t).Align(context.Background(), coarse, words, output, "")
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if result.Format != subtitles.FormatASS {
		t.Fatalf("format = %q, want ass", result.Format)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `hello {\c&H00FFFF&}world{\r}`) {
		t.Fatalf("expected ASS marker in output:\n%s", data)
	}
}

func TestRunnerAlignParseFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	coarse := writeFile(t, dir, "coarse.srt", "1\n00:00:00,000 00:00:02,000\nbroken\n")
	words := writeFile(t, dir, "words.srt", wordsSRT)
	output := filepath.Join(dir, "highlights.json")

	_, err := newRunner(t).Align(context.Background(), coarse, words, output, "json")
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Fatalf("expected no artifact, stat err = %v", err)
	}
}

func TestRunnerGroup(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "coarse.srt", `1
00:00:00,000 --> 00:00:00,900
Hi

2
00:00:01,000 --> 00:00:01,900
there friend

3
00:00:02,000 --> 00:00:04,000
this line has five words
`)
	output := filepath.Join(dir, "grouped.srt")

	result, err := newRunner(t).Group(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if result.InputCues != 3 || result.OutputCues != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,900\nHi there friend\n\n2\n00:00:02,000 --> 00:00:04,000\nthis line has five words\n\n"
	if string(data) != want {
		t.Fatalf("grouped output =\n%q\nwant\n%q", data, want)
	}
}

func TestRunnerGroupEmptyInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "empty.srt", "")
	output := filepath.Join(dir, "grouped.srt")

	result, err := newRunner(t).Group(context.Background(), input, output)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if result.OutputCues != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("expected empty artifact: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty file, got %q", data)
	}
}

func TestRunExecutesPlanInOrder(t *testing.T) {
	dir := t.TempDir()
	json3 := writeFile(t, dir, "words.json3", `{"events":[
		{"tStartMs":0,"segs":[{"utf8":"hello"},{"utf8":" world","tOffsetMs":1000}]},
		{"tStartMs":2000,"segs":[{"utf8":"good"}]}
	]}`)
	coarse := writeFile(t, dir, "coarse.srt", coarseSRT)

	ops := []config.Operation{
		{Kind: config.OperationJSON3, Input: json3, Output: filepath.Join(dir, "words.srt")},
		{Kind: config.OperationGroup, Input: coarse, Output: filepath.Join(dir, "grouped.srt")},
		{Kind: config.OperationAlign, Input: filepath.Join(dir, "grouped.srt"), Words: filepath.Join(dir, "words.srt"), Output: filepath.Join(dir, "out.yaml")},
	}
	summary, err := newRunner(t).Run(context.Background(), ops)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RunID == "" {
		t.Fatal("expected generated run id")
	}
	if len(summary.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(summary.Results))
	}
	align := summary.Results[2]
	if align.Format != subtitles.FormatYAML || align.OutputCues != 3 || align.Align.Matched != 3 {
		t.Fatalf("unexpected align result: %+v (%+v)", align, align.Align)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	coarse := writeFile(t, dir, "coarse.srt", coarseSRT)
	ops := []config.Operation{
		{Kind: config.OperationGroup, Input: coarse, Output: filepath.Join(dir, "a.srt")},
		{Kind: config.OperationGroup, Input: filepath.Join(dir, "missing.srt"), Output: filepath.Join(dir, "b.srt")},
		{Kind: config.OperationGroup, Input: coarse, Output: filepath.Join(dir, "c.srt")},
	}
	ctx := services.WithRunID(context.Background(), "fixed-run")
	summary, err := newRunner(t).Run(ctx, ops)
	if !errors.Is(err, services.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
	if summary.RunID != "fixed-run" {
		t.Fatalf("run id = %q, want fixed-run", summary.RunID)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(summary.Results))
	}
	if _, err := os.Stat(filepath.Join(dir, "c.srt")); !os.IsNotExist(err) {
		t.Fatal("expected later steps to be skipped")
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ops := []config.Operation{{Kind: config.OperationGroup, Input: "a", Output: "b"}}
	_, err := newRunner(t).Run(ctx, ops)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunEmptyPlan(t *testing.T) {
	summary, err := newRunner(t).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Results) != 0 || summary.RunID == "" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestExecuteRejectsUnknownKind(t *testing.T) {
	_, err := newRunner(t).Execute(context.Background(), config.Operation{Kind: "burn"})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"out.json": subtitles.FormatJSON,
		"out.YML":  subtitles.FormatYAML,
		"out.yaml": subtitles.FormatYAML,
		"out.ssa":  subtitles.FormatASS,
		"out":      subtitles.FormatJSON,
		"out.ass":  subtitles.FormatASS,
	}
	for path, want := range tests {
		if got := workflow.FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
