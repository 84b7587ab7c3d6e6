package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subweave/internal/services"
	"subweave/internal/subtitles"
	"subweave/internal/timecode"
)

type highlightReport struct {
	Records  int    `json:"records"`
	Marked   int    `json:"marked"`
	Unmarked int    `json:"unmarked"`
	Start    int64  `json:"start_ms"`
	End      int64  `json:"end_ms"`
	Format   string `json:"format"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a subtitle track or a highlight artifact",
		Long: `Summarize a subtitle track (cue count, words, time span, ordering issues)
or, for .json/.yaml files, a highlight artifact written by align.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			switch strings.ToLower(filepath.Ext(path)) {
			case ".json", ".yaml", ".yml":
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				marker := subtitles.DefaultMarker.Open
				if cfg.Alignment.MarkerOpen != "" {
					marker = cfg.Alignment.MarkerOpen
				}
				report, err := inspectHighlights(path, marker)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, report)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderHighlightReport(report))
				return nil
			}

			track, err := subtitles.ReadTrack(path)
			if err != nil {
				return err
			}
			report := subtitles.InspectTrack(track)
			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTrackReport(report))
			colorize := shouldColorize(out)
			if len(report.Issues) == 0 {
				fmt.Fprintln(out, renderStatusLine("Track", statusOK, "no issues", colorize))
			}
			for _, issue := range report.Issues {
				fmt.Fprintln(out, renderStatusLine("Track", statusWarn, issue, colorize))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}

func inspectHighlights(path, marker string) (highlightReport, error) {
	format := subtitles.FormatJSON
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = subtitles.FormatYAML
	}
	file, err := os.Open(path)
	if err != nil {
		return highlightReport{}, services.Wrap(services.ErrIO, "cli", "open artifact", path, err)
	}
	defer file.Close()

	records, err := subtitles.DecodeHighlights(file, format)
	if err != nil {
		return highlightReport{}, err
	}
	report := highlightReport{Records: len(records), Format: format}
	for i, r := range records {
		if strings.Contains(r.Text, marker) {
			report.Marked++
		} else {
			report.Unmarked++
		}
		if i == 0 || r.Start < report.Start {
			report.Start = r.Start
		}
		if r.End > report.End {
			report.End = r.End
		}
	}
	return report, nil
}

func renderTrackReport(report subtitles.TrackReport) string {
	headers := []string{"Cues", "Words", "Start", "End"}
	rows := [][]string{{
		strconv.Itoa(report.Cues),
		strconv.Itoa(report.Words),
		timecode.FormatSRT(report.Start),
		timecode.FormatSRT(report.End),
	}}
	return renderTable(headers, rows, []columnAlignment{alignRight, alignRight, alignRight, alignRight})
}

func renderHighlightReport(report highlightReport) string {
	headers := []string{"Format", "Records", "Highlighted", "Plain", "Start", "End"}
	rows := [][]string{{
		report.Format,
		strconv.Itoa(report.Records),
		strconv.Itoa(report.Marked),
		strconv.Itoa(report.Unmarked),
		timecode.FormatSRT(report.Start),
		timecode.FormatSRT(report.End),
	}}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight})
}
