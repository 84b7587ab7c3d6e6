package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subweave/internal/workflow"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the operations listed in the configuration",
		Long: `Execute each [[operations]] entry in order, stopping at the first failure.
Without [[operations]], runs a single align step from the [alignment]
track paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			plan := cfg.Plan()
			if len(plan) == 0 {
				return fmt.Errorf("no operations configured in %s; add [[operations]] or set alignment track paths", ctx.configPath)
			}
			runner, err := ctx.runner(cfg)
			if err != nil {
				return err
			}
			summary, runErr := runner.Run(cmd.Context(), plan)
			if err := writeSummary(cmd, jsonOutput, summary); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the summary as JSON")
	return cmd
}

func writeSummary(cmd *cobra.Command, jsonOutput bool, summary workflow.Summary) error {
	if jsonOutput {
		return writeJSON(cmd, summary)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", summary.RunID)
	if len(summary.Results) == 0 {
		return nil
	}
	fmt.Fprintln(out, renderResults(summary.Results))
	return nil
}
