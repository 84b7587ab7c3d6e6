package main

import (
	"github.com/spf13/cobra"
)

func newConvertJSON3Command(ctx *commandContext) *cobra.Command {
	var output string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "convert-json3 <captions.json3>",
		Short: "Convert json3 word captions into a word-level SRT track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input := args[0]
			if output == "" {
				output = derivePath(input, ".words.srt")
			}
			runner, err := ctx.runner(cfg)
			if err != nil {
				return err
			}
			result, err := runner.ConvertJSON3(cmd.Context(), input, output)
			if err != nil {
				return err
			}
			return writeResults(cmd, jsonOutput, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output SRT path (default <captions>.words.srt)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}
