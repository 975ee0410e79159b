package rules

import (
	"fmt"
	"sort"
)

// Default returns a fresh instance of every built-in rule.
func Default() []Rule {
	return []Rule{
		NewParamType(),
		NewSuperfluousDoc(),
	}
}

// ByName returns the rule with the given name from rs.
func ByName(rs []Rule, name string) (Rule, bool) {
	for _, r := range rs {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Sorted orders rules by descending priority, then by name for a stable
// order. phpdoc_to_param_type must run before no_superfluous_phpdoc_tags:
// inserting native types changes which documentation becomes redundant.
func Sorted(rs []Rule) []Rule {
	out := make([]Rule, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() > out[j].Priority()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Configure applies per-rule option maps keyed by rule name.
func Configure(rs []Rule, opts map[string]Options) error {
	for _, r := range rs {
		o, ok := opts[r.Name()]
		if !ok {
			continue
		}
		if err := r.Configure(o); err != nil {
			return fmt.Errorf("rule %s: %w", r.Name(), err)
		}
	}
	return nil
}
