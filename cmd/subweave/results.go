package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subweave/internal/workflow"
)

func writeResults(cmd *cobra.Command, jsonOutput bool, result workflow.Result) error {
	if jsonOutput {
		return writeJSON(cmd, result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderResults([]workflow.Result{result}))
	if result.Align != nil {
		for _, line := range alignStatusLines(*result.Align, shouldColorize(out)) {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func renderResults(results []workflow.Result) string {
	headers := []string{"Operation", "Input", "Output", "Cues In", "Cues Out", "Matched", "Fallback", "Elapsed"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		input := filepath.Base(r.Input)
		if r.Words != "" {
			input += " + " + filepath.Base(r.Words)
		}
		matched, fallback := "-", "-"
		if r.Align != nil {
			matched = strconv.Itoa(r.Align.Matched)
			fallback = strconv.Itoa(r.Align.Fallback)
		}
		operation := r.Operation
		if r.Format != "" {
			operation += " (" + r.Format + ")"
		}
		rows = append(rows, []string{
			operation,
			input,
			filepath.Base(r.Output),
			strconv.Itoa(r.InputCues),
			strconv.Itoa(r.OutputCues),
			matched,
			fallback,
			r.Elapsed.Round(time.Millisecond).String(),
		})
	}
	return renderTable(headers, rows, aligns)
}

// derivePath replaces the extension of input with suffix.
func derivePath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// writeJSON prints v for scripting. HTML escaping is off so <mark> tags in
// caption text survive.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
