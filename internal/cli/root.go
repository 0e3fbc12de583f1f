// Package cli implements the changelint command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temps-sh/changelint/internal/config"
	clierrors "github.com/temps-sh/changelint/internal/errors"
)

var (
	configFlag string
	plainFlag  bool

	// cfg is loaded once per invocation by the root PersistentPreRunE.
	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "changelint [file...]",
	Short: "Validate changelogs against the Keep a Changelog format",
	Long: `changelint checks that a changelog follows the Keep a Changelog
convention (https://keepachangelog.com/en/1.0.0/): a "# Changelog" header,
an [Unreleased] section, dated version sections, and the fixed category
vocabulary (Added, Changed, Deprecated, Removed, Fixed, Security).

Structural violations are errors and fail validation with exit code 1;
stylistic deviations are warnings and never affect the exit code.`,
	Example: `  changelint                   # validate ./CHANGELOG.md
  changelint docs/HISTORY.md   # validate a specific file
  changelint a.md b.md         # validate several files in parallel
  changelint watch             # re-validate on every change
  changelint install-hook      # install as a git pre-commit hook`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return clierrors.NewConfigError(err.Error(),
				"check the config file with a YAML linter",
				"or remove it to fall back to defaults")
		}
		if cmd.Flags().Changed("plain") {
			loaded.Plain = plainFlag
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to project config file (default .changelint/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false,
		"Plain text output (no colors or icons)")
}

// Execute runs the root command, rendering structured errors to stderr.
// The returned error carries the process exit code via ExitError.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		if cliErr.Category == clierrors.Argument {
			return NewExitError(ExitInvalidArguments)
		}
		return NewExitError(ExitValidationFailed)
	}

	var exitErr *ExitError
	if !asExitError(err, &exitErr) {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}
