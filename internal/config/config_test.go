package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"phpfix/internal/config"
	"phpfix/internal/phpver"
	"phpfix/internal/rules"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()

	target, err := cfg.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	if target != phpver.PHP74 {
		t.Errorf("default target = %v", target)
	}

	rs, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("BuildRules: %v", err)
	}
	if len(rs) != len(rules.Default()) {
		t.Errorf("got %d rules, want all %d by default", len(rs), len(rules.Default()))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[php]
version = "7.1"

[fix]
risky = true
jobs = 4

[rules.phpdoc_to_param_type]
scalar_types = false

[rules.no_superfluous_phpdoc_tags]
enabled = false
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	target, err := cfg.Target()
	if err != nil {
		t.Fatal(err)
	}
	if target != phpver.PHP71 {
		t.Errorf("target = %v", target)
	}
	if cfg.Fix.Jobs != 4 {
		t.Errorf("jobs = %d", cfg.Fix.Jobs)
	}

	rs, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("BuildRules: %v", err)
	}
	if len(rs) != 1 || rs[0].Name() != "phpdoc_to_param_type" {
		t.Fatalf("rules = %v", rs)
	}
}

func TestLoadBadVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[php]\nversion = \"seven\"\n")

	if _, err := config.Load(path); err == nil {
		t.Error("expected an error for a malformed version")
	}
}

func TestRiskyGate(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[fix]\nrisky = false\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	rs, err := cfg.BuildRules()
	if err != nil {
		t.Fatalf("BuildRules: %v", err)
	}
	for _, r := range rs {
		if r.Risky() {
			t.Errorf("risky rule %s enabled with risky = false", r.Name())
		}
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[php]\nversion = \"7.2\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := config.Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, want manifest in %s", path, root)
	}
}

func TestLoadOrDefaultWithoutManifest(t *testing.T) {
	cfg, path, err := config.LoadOrDefault(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q without a manifest", path)
	}
	if cfg.PHP.Version != "7.4" {
		t.Errorf("version = %q", cfg.PHP.Version)
	}
}

func TestHashChangesWithOptions(t *testing.T) {
	a := config.Default()
	b := config.Default()
	b.Rules = map[string]map[string]any{
		"phpdoc_to_param_type": {"scalar_types": false},
	}
	if a.Hash() == b.Hash() {
		t.Error("option change did not change the hash")
	}
	if a.Hash() != config.Default().Hash() {
		t.Error("hash is not deterministic")
	}
}
