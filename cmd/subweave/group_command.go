package main

import (
	"github.com/spf13/cobra"
)

func newGroupCommand(ctx *commandContext) *cobra.Command {
	var output string
	var lines int
	var minWords int
	var normalization string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "group <track>",
		Short: "Merge consecutive cues into larger caption blocks",
		Long: `Merge runs of up to --lines consecutive cues into one cue spanning them.
A merged-in cue with --min-words words or fewer is joined with a space,
longer cues start a new line. The result is written as SRT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("lines") {
				cfg.Grouping.LinesPerGroup = lines
			}
			if flags.Changed("min-words") {
				cfg.Grouping.MinWords = minWords
			}
			if flags.Changed("normalization") {
				cfg.Text.Normalization = normalization
			}
			if err := validateOverrides(&cfg); err != nil {
				return err
			}

			input := args[0]
			if output == "" {
				output = derivePath(input, ".grouped.srt")
			}
			runner, err := ctx.runner(&cfg)
			if err != nil {
				return err
			}
			result, err := runner.Group(cmd.Context(), input, output)
			if err != nil {
				return err
			}
			return writeResults(cmd, jsonOutput, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SRT path (default <track>.grouped.srt)")
	cmd.Flags().IntVar(&lines, "lines", 0, "Maximum cues per group (overrides grouping.lines_per_group)")
	cmd.Flags().IntVar(&minWords, "min-words", 0, "Space-join threshold in words (overrides grouping.min_words)")
	cmd.Flags().StringVar(&normalization, "normalization", "", "Unicode normalization: nfc or nfkc")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}
