package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temps-sh/changelint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "changelint %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
