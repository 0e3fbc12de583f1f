// Package output renders validation results to the terminal. It is kept
// free of CLI dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/temps-sh/changelint/internal/changelog"
)

var (
	// Severity styles fall back gracefully when colors are unavailable.
	successText = color.New(color.FgGreen).SprintFunc()
	warningText = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorText   = color.New(color.FgRed).SprintFunc()
)

// Printer writes severity-tagged validation output. With Plain set it
// substitutes text prefixes for colors and glyphs, for logs and CI.
type Printer struct {
	out   io.Writer
	plain bool
}

// New returns a Printer writing to out.
func New(out io.Writer, plain bool) *Printer {
	return &Printer{out: out, plain: plain}
}

// Infof writes an untagged progress line.
func (p *Printer) Infof(format string, args ...any) {
	if p.plain {
		fmt.Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "🔍 "+format+"\n", args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	if p.plain {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
		return
	}
	fmt.Fprintln(p.out, successText("✅ "+fmt.Sprintf(format, args...)))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	if p.plain {
		fmt.Fprintf(p.out, "[WARN] "+format+"\n", args...)
		return
	}
	fmt.Fprintln(p.out, warningText("⚠️  "+fmt.Sprintf(format, args...)))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	if p.plain {
		fmt.Fprintf(p.out, "[ERROR] "+format+"\n", args...)
		return
	}
	fmt.Fprintln(p.out, errorText("❌ "+fmt.Sprintf(format, args...)))
}

// Report renders a validation report for the named file: warnings first,
// then errors when present, then the final status line. The report's
// verdict is returned unchanged by rendering.
func (p *Printer) Report(name string, rep *changelog.Report) bool {
	for _, w := range rep.Warnings {
		p.Warnf("%s", w)
	}

	if len(rep.Errors) > 0 {
		if len(rep.Warnings) > 0 {
			fmt.Fprintln(p.out)
		}
		for _, e := range rep.Errors {
			p.Errorf("%s", e)
		}
		fmt.Fprintln(p.out)
		p.Errorf("%s validation failed", name)
		return rep.Valid()
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(p.out)
		p.Warnf("%s has warnings but is valid", name)
	} else {
		p.Successf("%s format is valid", name)
	}
	return rep.Valid()
}
