package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsxload/internal/app"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <entry>",
		Short: "Link an entry module and its imports into a single script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return c.app.Bundle(cmd.Context(), app.BundleOptions{
				Options: options(cmd),
				Entry:   args[0],
				Output:  output,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Bundle destination (default: stdout)")
	return cmd
}
