package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodelinfo/version"
)

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gomodelinfo %s (commit %s, built %s)\n",
			version.GetVersion(), version.GetCommit(), version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
