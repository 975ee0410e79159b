package rules_test

import (
	"testing"

	"phpfix/internal/rules"
)

func TestDefaultRules(t *testing.T) {
	rs := rules.Default()
	if len(rs) != 2 {
		t.Fatalf("Default returned %d rules", len(rs))
	}

	if _, ok := rules.ByName(rs, "phpdoc_to_param_type"); !ok {
		t.Error("phpdoc_to_param_type missing")
	}
	if _, ok := rules.ByName(rs, "no_superfluous_phpdoc_tags"); !ok {
		t.Error("no_superfluous_phpdoc_tags missing")
	}
	if _, ok := rules.ByName(rs, "nope"); ok {
		t.Error("ByName found a rule that does not exist")
	}
}

func TestSortedOrder(t *testing.T) {
	rs := rules.Sorted(rules.Default())
	if rs[0].Name() != "phpdoc_to_param_type" {
		t.Errorf("first rule = %s, the type inserter must run before the tag cleaner", rs[0].Name())
	}
	if rs[1].Name() != "no_superfluous_phpdoc_tags" {
		t.Errorf("second rule = %s", rs[1].Name())
	}
}

func TestConfigureUnknownRuleIgnored(t *testing.T) {
	rs := rules.Default()
	err := rules.Configure(rs, map[string]rules.Options{
		"does_not_exist": {"flag": true},
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
}

func TestConfigureBadOptionType(t *testing.T) {
	rs := rules.Default()
	err := rules.Configure(rs, map[string]rules.Options{
		"phpdoc_to_param_type": {"scalar_types": "yes"},
	})
	if err == nil {
		t.Fatal("expected an error for a non-bool scalar_types")
	}
}
