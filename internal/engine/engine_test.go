package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"phpfix/internal/engine"
	"phpfix/internal/phpver"
	"phpfix/internal/rules"
)

const fixableSrc = "<?php\n/** @param string $bar */\nfunction my_foo($bar) {}\n"
const fixedSrc = "<?php\n/** @param string $bar */\nfunction my_foo(string $bar) {}\n"
const cleanSrc = "<?php\nfunction plain(string $x) { return $x; }\n"

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func baseOptions() *engine.Options {
	return &engine.Options{
		Target:         phpver.PHP74,
		Rules:          []rules.Rule{rules.NewParamType()},
		MaxDiagnostics: 64,
	}
}

func TestFixDirRewritesFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.php":        fixableSrc,
		"sub/b.php":    cleanSrc,
		"notes/c.txt":  "not php",
		"sub/deep.php": fixableSrc,
	})

	_, results, err := engine.FixDir(context.Background(), dir, baseOptions())
	if err != nil {
		t.Fatalf("FixDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3 php files", len(results))
	}

	// results come back in sorted path order
	if filepath.Base(results[0].Path) != "a.php" {
		t.Errorf("first result = %s", results[0].Path)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.php"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != fixedSrc {
		t.Errorf("a.php on disk:\n%s\nwant:\n%s", got, fixedSrc)
	}

	clean, err := os.ReadFile(filepath.Join(dir, "sub", "b.php"))
	if err != nil {
		t.Fatal(err)
	}
	if string(clean) != cleanSrc {
		t.Errorf("clean file was modified:\n%s", clean)
	}

	sum := engine.Summarize(results)
	if sum.Total != 3 || sum.Changed != 2 || sum.Errors != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestFixDirDryRun(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.php": fixableSrc})

	opts := baseOptions()
	opts.DryRun = true
	_, results, err := engine.FixDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("FixDir: %v", err)
	}

	if !results[0].Changed {
		t.Error("dry run must still report the change")
	}
	if results[0].Fixed != fixedSrc {
		t.Errorf("Fixed:\n%s", results[0].Fixed)
	}

	got, err := os.ReadFile(filepath.Join(dir, "a.php"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != fixableSrc {
		t.Errorf("dry run wrote to disk:\n%s", got)
	}
}

func TestFixDirEmpty(t *testing.T) {
	dir := t.TempDir()
	_, results, err := engine.FixDir(context.Background(), dir, baseOptions())
	if err != nil {
		t.Fatalf("FixDir: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results for an empty dir", len(results))
	}
}

func TestFixPathsLoadError(t *testing.T) {
	_, results := engine.FixPaths([]string{"/does/not/exist.php"}, baseOptions())
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	if !results[0].Bag.HasErrors() {
		t.Error("missing file must produce an error diagnostic")
	}
	if results[0].Changed {
		t.Error("missing file must not report a change")
	}
}

func TestFixPathsOrder(t *testing.T) {
	dir := writeTree(t, map[string]string{"z.php": cleanSrc, "a.php": cleanSrc})

	paths := []string{filepath.Join(dir, "z.php"), filepath.Join(dir, "a.php")}
	_, results := engine.FixPaths(paths, baseOptions())
	if len(results) != 2 || results[0].Path != paths[0] || results[1].Path != paths[1] {
		t.Errorf("explicit path order not preserved: %+v", results)
	}
}

func TestFixDirEvents(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.php": fixableSrc})

	events := make(chan engine.Event, 16)
	opts := baseOptions()
	opts.DryRun = true
	opts.Events = events

	if _, _, err := engine.FixDir(context.Background(), dir, opts); err != nil {
		t.Fatalf("FixDir: %v", err)
	}
	close(events)

	var started, finished int
	for ev := range events {
		switch ev.Stage {
		case engine.StageStarted:
			started++
		case engine.StageFinished:
			finished++
			if !ev.Changed {
				t.Error("finish event must carry the change flag")
			}
		}
	}
	if started != 1 || finished != 1 {
		t.Errorf("events: %d started, %d finished", started, finished)
	}
}

func TestFixFileUsesCache(t *testing.T) {
	cache, err := engine.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := writeTree(t, map[string]string{"clean.php": cleanSrc})

	opts := baseOptions()
	opts.Cache = cache

	path := filepath.Join(dir, "clean.php")
	_, first := engine.FixPaths([]string{path}, opts)
	if first[0].Cached {
		t.Fatal("first run must not be a cache hit")
	}

	_, second := engine.FixPaths([]string{path}, opts)
	if !second[0].Cached {
		t.Error("unchanged file must hit the cache on the second run")
	}
	if second[0].Changed {
		t.Error("cache hit must report no change")
	}
}

func TestCacheKeyedByConfiguration(t *testing.T) {
	cache, err := engine.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := writeTree(t, map[string]string{"clean.php": cleanSrc})
	path := filepath.Join(dir, "clean.php")

	opts := baseOptions()
	opts.Cache = cache
	engine.FixPaths([]string{path}, opts)

	// a different target must not reuse the entry
	other := baseOptions()
	other.Cache = cache
	other.Target = phpver.PHP70
	_, results := engine.FixPaths([]string{path}, other)
	if results[0].Cached {
		t.Error("cache entry leaked across targets")
	}
}
