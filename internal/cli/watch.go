package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/temps-sh/changelint/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-validate the changelog whenever it changes",
	Long: `Validate the changelog, then keep watching it and re-validate on
every change until interrupted. Useful while editing release notes.`,
	Example: `  changelint watch
  changelint watch docs/HISTORY.md`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := cfg.ChangelogPath
	if len(args) == 1 {
		path = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n\n", path)
	}

	w := watch.New(path, func() bool {
		return validateFile(path, out)
	}, out)

	return w.Run(ctx)
}
