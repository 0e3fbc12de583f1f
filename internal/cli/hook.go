package cli

import (
	"github.com/spf13/cobra"

	clierrors "github.com/temps-sh/changelint/internal/errors"
	"github.com/temps-sh/changelint/internal/githook"
	"github.com/temps-sh/changelint/internal/output"
)

var installHookCmd = &cobra.Command{
	Use:   "install-hook",
	Short: "Install changelint as a git pre-commit hook",
	Long: `Install a pre-commit hook that validates the changelog before each
commit. The enclosing git repository is located automatically; an existing
hook written by another tool is never overwritten.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstallHook(cmd)
	},
}

func init() {
	rootCmd.AddCommand(installHookCmd)
}

func runInstallHook(cmd *cobra.Command) error {
	hookPath, err := githook.Install(".")
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "installing pre-commit hook",
			"run changelint from inside a git repository",
			"move an existing pre-commit hook aside before installing")
	}

	output.New(cmd.OutOrStdout(), cfg.Plain).Successf("Installed pre-commit hook at %s", hookPath)
	return nil
}
