package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jsxload/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [modules...]",
		Short: "Compile modules and write them as one bundle",
		Long: "Compile modules and write them as one bundle.\n\n" +
			"Without arguments the modules listed in the configuration are built, " +
			"or every module found below the root when none are listed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Build(cmd.Context(), buildOptions(cmd, args))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [modules...]",
		Short: "Build, then rebuild whenever a module changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), buildOptions(cmd, args))
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Bundle destination, \"-\" for stdout (overrides the configuration)")
	cmd.Flags().IntP("jobs", "j", 0, "Number of modules compiled concurrently (default: one per CPU)")
}

func buildOptions(cmd *cobra.Command, args []string) app.BuildOptions {
	output, _ := cmd.Flags().GetString("output")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return app.BuildOptions{
		Options: options(cmd),
		Modules: args,
		Output:  output,
		Jobs:    jobs,
	}
}
