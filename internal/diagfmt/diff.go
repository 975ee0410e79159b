package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"

	"phpfix/internal/engine"
	"phpfix/internal/source"
)

// WriteDiff renders the unified diff for one changed file. No output for
// unchanged results.
func WriteDiff(w io.Writer, res *engine.FileResult, fileSet *source.FileSet, opts DiffOpts) error {
	if !res.Changed {
		return nil
	}

	path := res.Path
	if f, ok := fileSet.GetByPath(res.Path); ok {
		path = f.FormatPath(opts.PathMode.formatMode(), fileSet.BaseDir())
	}

	context := opts.Context
	if context <= 0 {
		context = 3
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.Original),
		B:        difflib.SplitLines(res.Fixed),
		FromFile: path,
		ToFile:   path,
		Context:  context,
	})
	if err != nil {
		return err
	}

	if !opts.Color {
		_, err = io.WriteString(w, text)
		return err
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(w, color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(w, color.RedString("%s", line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(w, color.CyanString("%s", line))
		default:
			fmt.Fprint(w, line)
		}
	}
	return nil
}

// WriteDiffs renders diffs for every changed result in order.
func WriteDiffs(w io.Writer, results []engine.FileResult, fileSet *source.FileSet, opts DiffOpts) error {
	for i := range results {
		if err := WriteDiff(w, &results[i], fileSet, opts); err != nil {
			return err
		}
	}
	return nil
}
