package rules_test

import (
	"testing"

	"phpfix/internal/phpver"
	"phpfix/internal/rules"
)

func applySuperfluous(t *testing.T, src string, target phpver.ID) string {
	t.Helper()
	r := rules.NewSuperfluousDoc()
	s := lexStream(t, src)
	if r.Candidate(s, target) {
		r.Apply(s, target)
	}
	return s.Render()
}

func TestSuperfluousRemovesMatchingParam(t *testing.T) {
	src := "<?php\n/**\n * Does things.\n *\n * @param string $bar\n */\nfunction f(string $bar) {}\n"
	want := "<?php\n/**\n * Does things.\n *\n */\nfunction f(string $bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuperfluousDropsEmptyDoc(t *testing.T) {
	src := "<?php\n/**\n * @param string $bar\n */\nfunction f(string $bar) {}\n"
	want := "<?php\nfunction f(string $bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuperfluousKeepsDescription(t *testing.T) {
	src := "<?php\n/**\n * @param string $bar the frobnication subject\n */\nfunction f(string $bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != src {
		t.Errorf("annotation with prose removed:\n%s", got)
	}
}

func TestSuperfluousKeepsMismatch(t *testing.T) {
	// the annotation is more specific than the declaration and stays
	src := "<?php\n/**\n * @param Foo[] $bar\n */\nfunction f(array $bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != src {
		t.Errorf("more specific annotation removed:\n%s", got)
	}
}

func TestSuperfluousKeepsUntypedParam(t *testing.T) {
	src := "<?php\n/**\n * @param string $bar\n */\nfunction f($bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != src {
		t.Errorf("annotation on an undeclared parameter removed:\n%s", got)
	}
}

func TestSuperfluousRemovesTypelessParam(t *testing.T) {
	src := "<?php\n/**\n * Summary.\n * @param $bar\n */\nfunction f($bar) {}\n"
	want := "<?php\n/**\n * Summary.\n */\nfunction f($bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuperfluousNullableSpellings(t *testing.T) {
	src := "<?php\n/**\n * @param null|string $bar\n */\nfunction f(?string $bar) {}\n"
	want := "<?php\nfunction f(?string $bar) {}\n"
	if got := applySuperfluous(t, src, phpver.PHP74); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRulePipeline(t *testing.T) {
	// phpdoc_to_param_type inserts the declaration, which makes the
	// annotation redundant for no_superfluous_phpdoc_tags in the same run
	src := "<?php\n/**\n * @param string $bar\n */\nfunction my_foo($bar) {}\n"
	want := "<?php\nfunction my_foo(string $bar) {}\n"

	s := lexStream(t, src)
	for _, r := range rules.Sorted(rules.Default()) {
		if r.Candidate(s, phpver.PHP74) {
			r.Apply(s, phpver.PHP74)
		}
	}
	if got := s.Render(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
