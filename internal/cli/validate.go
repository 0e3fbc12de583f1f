package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/temps-sh/changelint/internal/changelog"
	"github.com/temps-sh/changelint/internal/output"
)

// runValidate validates the files named in args, or the configured default
// changelog when no arguments are given. Multiple files are validated in
// parallel; each run is self-contained and read-only.
func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.ChangelogPath}
	}

	out := cmd.OutOrStdout()

	if len(paths) == 1 {
		if !validateFile(paths[0], out) {
			return NewExitError(ExitValidationFailed)
		}
		return nil
	}

	// Output is buffered per file so parallel runs never interleave.
	bufs := make([]bytes.Buffer, len(paths))
	oks := make([]bool, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			oks[i] = validateFile(path, &bufs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	allValid := true
	for i := range paths {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if _, err := out.Write(bufs[i].Bytes()); err != nil {
			return err
		}
		allValid = allValid && oks[i]
	}

	if !allValid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// validateFile runs the read-tokenize-evaluate-report pipeline for one
// file. A missing file is a validation error, not a crash; the verdict is
// false either way.
func validateFile(path string, out io.Writer) bool {
	p := output.New(out, cfg.Plain)
	p.Infof("Validating %s format...", path)
	fmt.Fprintln(out)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p.Errorf("%s not found", path)
		} else {
			p.Errorf("reading %s: %v", path, err)
		}
		return false
	}

	doc := changelog.Parse(string(content))
	return p.Report(path, changelog.Evaluate(doc))
}
