package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phpfix/internal/engine"
	"phpfix/internal/source"
	"phpfix/internal/ui"
)

type fixOutcome struct {
	fileSet *source.FileSet
	results []engine.FileResult
	err     error
}

// runFixWithUI runs the directory fixer behind a live progress display.
// The engine feeds per-file events into the model; the model quits when
// the channel closes.
func runFixWithUI(ctx context.Context, dir string, opts *engine.Options) (*source.FileSet, []engine.FileResult, error) {
	files, err := engine.ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan engine.Event, 256)
	outcomeCh := make(chan fixOutcome, 1)

	go func() {
		optsCopy := *opts
		optsCopy.Events = events
		fileSet, results, err := engine.FixDir(ctx, dir, &optsCopy)
		outcomeCh <- fixOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("phpfix "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
