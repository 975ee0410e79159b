// Package config loads .phpfix.toml, the project-level configuration for
// the fixer. The file is searched upward from the working directory, the
// way VCS roots are found; absence of a file means defaults.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"phpfix/internal/phpver"
	"phpfix/internal/rules"
)

// FileName is the manifest searched for in the project tree.
const FileName = ".phpfix.toml"

// Config mirrors the TOML file shape.
type Config struct {
	PHP   PHPConfig                 `toml:"php"`
	Fix   FixConfig                 `toml:"fix"`
	Rules map[string]map[string]any `toml:"rules"`
}

// PHPConfig holds the [php] section.
type PHPConfig struct {
	// Version is the target PHP version ceiling, e.g. "7.4".
	Version string `toml:"version"`
}

// FixConfig holds the [fix] section.
type FixConfig struct {
	// Risky enables rules that change runtime behavior.
	Risky bool `toml:"risky"`
	// Cache enables the clean-file disk cache.
	Cache bool `toml:"cache"`
	// Jobs caps parallelism; 0 means one worker per CPU.
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no manifest exists: target
// 7.4, risky rules on, every built-in rule enabled with its own defaults.
func Default() Config {
	return Config{
		PHP: PHPConfig{Version: "7.4"},
		Fix: FixConfig{Risky: true, Cache: true},
	}
}

// Find walks upward from startDir looking for the manifest.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if _, err := cfg.Target(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault finds and loads the manifest, falling back to defaults
// when none exists. The returned path is empty in the fallback case.
func LoadOrDefault(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Target parses the configured PHP version.
func (c Config) Target() (phpver.ID, error) {
	return phpver.Parse(c.PHP.Version)
}

// ruleEnabled reads the per-rule "enabled" key; missing means enabled.
func (c Config) ruleEnabled(name string) (bool, error) {
	section, ok := c.Rules[name]
	if !ok {
		return true, nil
	}
	v, ok := section["enabled"]
	if !ok {
		return true, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("rule %s: enabled must be a bool, got %T", name, v)
	}
	return b, nil
}

// BuildRules instantiates and configures the enabled rules. Risky rules
// are dropped unless [fix].risky is set.
func (c Config) BuildRules() ([]rules.Rule, error) {
	var out []rules.Rule
	for _, r := range rules.Default() {
		enabled, err := c.ruleEnabled(r.Name())
		if err != nil {
			return nil, err
		}
		if !enabled {
			continue
		}
		if r.Risky() && !c.Fix.Risky {
			continue
		}
		if section, ok := c.Rules[r.Name()]; ok {
			opts := make(rules.Options, len(section))
			for k, v := range section {
				if k == "enabled" {
					continue
				}
				opts[k] = v
			}
			if err := r.Configure(opts); err != nil {
				return nil, err
			}
		}
		out = append(out, r)
	}
	return out, nil
}

// Hash fingerprints the configuration for cache keying. Any option change
// must produce a different hash.
func (c Config) Hash() string {
	h := sha256.New()
	fmt.Fprintf(h, "php=%s;risky=%t;", c.PHP.Version, c.Fix.Risky)

	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		keys := make([]string, 0, len(c.Rules[name]))
		for k := range c.Rules[name] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, "%s=%v,", k, c.Rules[name][k])
		}
		fmt.Fprintf(h, "%s{%s};", name, b.String())
	}
	return hex.EncodeToString(h.Sum(nil))
}
