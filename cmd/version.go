package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/version"
)

// versionCmd prints the long form with commit and build date; the --version
// flag on the root command prints just the version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.GetVersionInfo())
	},
}
