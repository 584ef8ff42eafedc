package commands

import (
	"github.com/spf13/cobra"

	"github.com/contribulate/dagster/internal/app"
)

func (c *CLI) newDaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Evaluate the asset graph on an interval with definitions hot-reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("definitions")
			interval, _ := cmd.Flags().GetDuration("interval")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			trace, _ := cmd.Flags().GetBool("trace")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Daemon(cmd.Context(), app.DaemonOptions{
				Path:        path,
				Interval:    interval,
				DryRun:      dryRun,
				Trace:       trace,
				Timeout:     timeout,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().StringP("definitions", "d", "", "Path to the definitions file (discovered upward from the working directory if unset)")
	cmd.Flags().DurationP("interval", "i", app.DefaultTickInterval, "Time between evaluation ticks")
	cmd.Flags().Bool("dry-run", false, "Render tick reports without launching runs")
	cmd.Flags().Bool("trace", false, "Log span timings for each tick")
	cmd.Flags().Duration("timeout", 0, "Abandon a tick after this duration")
	cmd.Flags().IntP("parallelism", "p", 0, "Cap on concurrently evaluated assets (defaults to CPU count)")
	return cmd
}
