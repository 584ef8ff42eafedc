package commands

import (
	"github.com/spf13/cobra"

	"github.com/contribulate/dagster/internal/app"
)

func (c *CLI) newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run a single evaluation tick over the asset graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("definitions")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			trace, _ := cmd.Flags().GetBool("trace")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Evaluate(cmd.Context(), app.EvaluateOptions{
				Path:        path,
				DryRun:      dryRun,
				Trace:       trace,
				Timeout:     timeout,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().StringP("definitions", "d", "", "Path to the definitions file (discovered upward from the working directory if unset)")
	cmd.Flags().Bool("dry-run", false, "Render the tick report without launching runs")
	cmd.Flags().Bool("trace", false, "Log span timings for the tick")
	cmd.Flags().Duration("timeout", 0, "Abandon the tick after this duration")
	cmd.Flags().IntP("parallelism", "p", 0, "Cap on concurrently evaluated assets (defaults to CPU count)")
	return cmd
}
