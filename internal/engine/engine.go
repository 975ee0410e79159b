// Package engine runs the rewrite rules over files and directories. One
// file is one unit of work: load, tokenize, apply every enabled rule in
// priority order, render, and write back when the text changed. Directory
// runs fan the files out over a worker pool.
package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"phpfix/internal/diag"
	"phpfix/internal/lexer"
	"phpfix/internal/phpver"
	"phpfix/internal/rules"
	"phpfix/internal/source"
	"phpfix/internal/token"
)

// Options configures one engine run.
type Options struct {
	// Target is the PHP version ceiling for emitted constructs.
	Target phpver.ID
	// Rules to apply; the engine sorts them by priority itself.
	Rules []rules.Rule
	// DryRun suppresses writing fixed files back to disk.
	DryRun bool
	// Jobs caps worker parallelism for directory runs; 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Cache, when non-nil, skips files whose content and configuration
	// were already seen clean.
	Cache *DiskCache
	// ConfigHash folds rule configuration into the cache key; two runs
	// with different options must never share cache entries.
	ConfigHash string
	// Events, when non-nil, receives one Started and one Finished event
	// per file.
	Events chan<- Event
}

func (o *Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// FileResult is the outcome for one file.
type FileResult struct {
	// Path as given to the engine.
	Path string
	// FileID within the run's FileSet; zero when loading failed.
	FileID source.FileID
	// Changed reports whether the rendered output differs from the input.
	Changed bool
	// Cached reports that the file was skipped via the disk cache.
	Cached bool
	// Original and Fixed hold the normalized input and the rendered
	// output. Equal when Changed is false.
	Original string
	Fixed    string
	// Bag collects the file's diagnostics.
	Bag *diag.Bag
}

// Summary aggregates a directory run.
type Summary struct {
	Total   int
	Changed int
	Cached  int
	Errors  int
}

// Summarize folds results into counts.
func Summarize(results []FileResult) Summary {
	var s Summary
	s.Total = len(results)
	for i := range results {
		if results[i].Changed {
			s.Changed++
		}
		if results[i].Cached {
			s.Cached++
		}
		if results[i].Bag != nil && results[i].Bag.HasErrors() {
			s.Errors++
		}
	}
	return s
}

// FixFile runs the configured rules over one already-loaded file and
// returns the result. The file on disk is written only when the text
// changed and DryRun is off.
func FixFile(fileSet *source.FileSet, id source.FileID, opts *Options) FileResult {
	file := fileSet.Get(id)
	bag := diag.NewBag(opts.MaxDiagnostics)

	res := FileResult{
		Path:     file.Path,
		FileID:   id,
		Original: string(file.Content),
		Bag:      bag,
	}

	if opts.Cache != nil {
		key := opts.Cache.Key(file.Content, opts.Target, opts.Rules, opts.ConfigHash)
		var payload CachePayload
		if hit, err := opts.Cache.Get(key, &payload); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.EngCacheError,
				Message:  "cache read failed: " + err.Error(),
			})
		} else if hit && payload.Clean {
			res.Cached = true
			res.Fixed = res.Original
			return res
		}
	}

	toks := lexer.Scan(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	stream := token.NewStream(toks)

	for _, r := range rules.Sorted(opts.Rules) {
		if r.Candidate(stream, opts.Target) {
			r.Apply(stream, opts.Target)
		}
	}

	res.Fixed = stream.Render()
	res.Changed = res.Fixed != res.Original

	switch {
	case res.Changed && !opts.DryRun:
		if err := writeFile(file.Path, res.Fixed); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOWriteFileError,
				Message:  "failed to write file: " + err.Error(),
			})
		}
	case !res.Changed && opts.Cache != nil:
		key := opts.Cache.Key(file.Content, opts.Target, opts.Rules, opts.ConfigHash)
		if err := opts.Cache.Put(key, &CachePayload{Schema: cacheSchemaVersion, Clean: true}); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.EngCacheError,
				Message:  "cache write failed: " + err.Error(),
			})
		}
	}
	return res
}

// FixPaths loads and fixes the given files sequentially, in order.
func FixPaths(paths []string, opts *Options) (*source.FileSet, []FileResult) {
	fileSet := source.NewFileSet()
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		opts.emit(Event{Path: path, Stage: StageStarted})

		id, err := fileSet.Load(path)
		if err != nil {
			bag := diag.NewBag(opts.MaxDiagnostics)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOLoadFileError,
				Message:  "failed to load file: " + err.Error(),
			})
			results = append(results, FileResult{Path: path, Bag: bag})
			opts.emit(Event{Path: path, Stage: StageFinished, Failed: true})
			continue
		}

		res := FixFile(fileSet, id, opts)
		results = append(results, res)
		opts.emit(Event{
			Path:    path,
			Stage:   StageFinished,
			Changed: res.Changed,
			Cached:  res.Cached,
			Failed:  res.Bag.HasErrors(),
		})
	}
	return fileSet, results
}

// FixDir fixes every *.php file under dir in parallel. Results come back
// in the deterministic sorted-path order regardless of completion order.
func FixDir(ctx context.Context, dir string, opts *Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// preload on one goroutine: the FileSet is not safe for concurrent
	// mutation, and workers only read from it afterwards
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	// each goroutine owns its result slot, no mutex needed
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.jobs(), len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			opts.emit(Event{Path: path, Stage: StageStarted})

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, Bag: bag}
				opts.emit(Event{Path: path, Stage: StageFinished, Failed: true})
				return nil
			}

			res := FixFile(fileSet, fileIDs[path], opts)
			results[i] = res
			opts.emit(Event{
				Path:    path,
				Stage:   StageFinished,
				Changed: res.Changed,
				Cached:  res.Cached,
				Failed:  res.Bag.HasErrors(),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func (o *Options) emit(ev Event) {
	if o.Events != nil {
		o.Events <- ev
	}
}

// ListFiles returns every *.php file under dir, sorted for a
// deterministic run order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".php") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func writeFile(path, content string) error {
	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
