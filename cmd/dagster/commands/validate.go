package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the definitions file without running a tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("definitions")
			return c.app.Validate(cmd.Context(), path)
		},
	}
	cmd.Flags().StringP("definitions", "d", "", "Path to the definitions file (discovered upward from the working directory if unset)")
	return cmd
}
