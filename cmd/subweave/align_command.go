package main

import (
	"github.com/spf13/cobra"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var output string
	var format string
	var scorer string
	var threshold float64
	var positional bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "align <coarse-track> <word-track>",
		Short: "Highlight each spoken word inside its caption",
		Long: `For every word cue that starts inside a caption's time window, emit the
caption text with the closest matching word highlighted, timed by the word.
Word cues with no close match emit the plain caption for its whole window.

Tracks may be SRT, WebVTT, ASS/SSA, TTML, or json3.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("scorer") {
				cfg.Alignment.Scorer = scorer
			}
			if flags.Changed("threshold") {
				cfg.Alignment.Threshold = threshold
			}
			if flags.Changed("positional") {
				cfg.Alignment.Positional = positional
			}
			if err := validateOverrides(&cfg); err != nil {
				return err
			}

			coarse, words := args[0], args[1]
			if output == "" {
				ext := format
				if ext == "" {
					ext = cfg.Alignment.Format
				}
				output = derivePath(coarse, ".highlights."+ext)
			}
			runner, err := ctx.runner(&cfg)
			if err != nil {
				return err
			}
			result, err := runner.Align(cmd.Context(), coarse, words, output, format)
			if err != nil {
				return err
			}
			return writeResults(cmd, jsonOutput, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Artifact path (default <coarse-track>.highlights.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Artifact format: json, yaml, or ass (default from output extension)")
	cmd.Flags().StringVar(&scorer, "scorer", "", "Similarity scorer: ratcliff or jaro_winkler")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum similarity for a highlight, in (0, 1]")
	cmd.Flags().BoolVar(&positional, "positional", false, "Highlight repeated words in spoken order")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}
