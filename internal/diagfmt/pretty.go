// Package diagfmt renders diagnostics, token dumps, and rewrite diffs for
// the command line.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"phpfix/internal/diag"
	"phpfix/internal/source"
)

// Pretty formats diagnostics in a human-readable form, one per line:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret marker under the span, then
// notes in the same shape. Callers are expected to Sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fileSet *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, &d, fileSet, opts)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fileSet *source.FileSet, opts PrettyOpts) {
	// I/O diagnostics carry no span; the message names the path itself
	if d.Primary.Empty() && d.Primary.File == 0 {
		fmt.Fprintf(w, "%s %s: %s\n",
			severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
	} else {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			spanLocation(d.Primary, fileSet, opts.PathMode),
			severityLabel(d.Severity, opts.Color),
			d.Code.ID(),
			d.Message)
	}

	writeContext(w, d.Primary, fileSet)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s: note: %s\n", spanLocation(n.Span, fileSet, opts.PathMode), n.Msg)
		writeContext(w, n.Span, fileSet)
	}
}

// writeContext prints the span's first source line with a caret run
// underneath. Empty spans (I/O diagnostics) have no context.
func writeContext(w io.Writer, span source.Span, fileSet *source.FileSet) {
	if span.Empty() {
		return
	}
	start, end := fileSet.Resolve(span)
	line := fileSet.Get(span.File).GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	markers := int(span.Len())
	if end.Line != start.Line {
		// multi-line span: underline to the end of the first line
		markers = len(line) - int(start.Col) + 1
	}
	if markers < 1 {
		markers = 1
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col)-1), strings.Repeat("^", markers))
}

func spanLocation(span source.Span, fileSet *source.FileSet, mode PathMode) string {
	f := fileSet.Get(span.File)
	path := f.FormatPath(mode.formatMode(), fileSet.BaseDir())
	start, _ := fileSet.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func severityLabel(sev diag.Severity, colorize bool) string {
	if !colorize {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return color.RedString(sev.String())
	case diag.SevWarning:
		return color.YellowString(sev.String())
	default:
		return color.CyanString(sev.String())
	}
}
