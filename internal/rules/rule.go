// Package rules defines the fixer rules and their registry. Every rule
// edits one file's token stream in place; a rule failure of any kind is a
// silent skip at the smallest possible granularity (one annotation, one
// function), never an error for the file.
package rules

import (
	"fmt"

	"phpfix/internal/phpver"
	"phpfix/internal/token"
)

// Options carries raw per-rule configuration values from the config file.
type Options map[string]any

// Bool reads a boolean option, falling back to def when absent.
func (o Options) Bool(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, fmt.Errorf("option %q: expected bool, got %T", key, v)
	}
	return b, nil
}

// Rule is one rewrite rule over a token stream.
type Rule interface {
	// Name is the stable rule identifier used in configuration.
	Name() string
	// Priority orders rule execution; higher runs earlier.
	Priority() int
	// Risky rules change behavior-observable code and are only applied
	// when risky rules are enabled.
	Risky() bool
	// Experimental rules carry no compatibility guarantee.
	Experimental() bool
	// Configure applies per-rule options. Unknown options are ignored.
	Configure(opts Options) error
	// Candidate reports whether the stream is worth a full Apply pass.
	Candidate(s *token.Stream, target phpver.ID) bool
	// Apply rewrites the stream in place. It never fails: anything that
	// cannot be rewritten safely is left untouched.
	Apply(s *token.Stream, target phpver.ID)
}
