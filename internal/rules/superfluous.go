package rules

import (
	"strings"

	"phpfix/internal/phpdoc"
	"phpfix/internal/phpver"
	"phpfix/internal/token"
)

// SuperfluousDoc removes @param annotations that repeat what the native
// parameter declaration already states. It runs after phpdoc_to_param_type
// so that freshly inserted declarations make their annotations removable in
// the same pass.
type SuperfluousDoc struct{}

func NewSuperfluousDoc() *SuperfluousDoc { return &SuperfluousDoc{} }

func (r *SuperfluousDoc) Name() string                 { return "no_superfluous_phpdoc_tags" }
func (r *SuperfluousDoc) Priority() int                { return 6 }
func (r *SuperfluousDoc) Risky() bool                  { return false }
func (r *SuperfluousDoc) Experimental() bool           { return false }
func (r *SuperfluousDoc) Configure(opts Options) error { return nil }

func (r *SuperfluousDoc) Candidate(s *token.Stream, target phpver.ID) bool {
	return s.HasKind(token.DocComment)
}

func (r *SuperfluousDoc) Apply(s *token.Stream, target phpver.ID) {
	for idx := s.Len() - 1; idx >= 0; idx-- {
		if !s.At(idx).IsFunctionDecl() {
			continue
		}
		r.fixFunction(s, idx)
	}
}

func (r *SuperfluousDoc) fixFunction(s *token.Stream, fnIdx int) {
	docIdx := findFunctionDocComment(s, fnIdx)
	if docIdx == -1 {
		return
	}
	doc := phpdoc.Parse(s.At(docIdx).Text)

	var drop []int
	for _, ann := range doc.Tags("param") {
		if r.superfluous(s, fnIdx, ann) {
			drop = append(drop, ann.Line)
		}
	}
	if len(drop) == 0 {
		return
	}

	text, empty := stripDocLines(s.At(docIdx).Text, drop)
	if !empty {
		s.SetText(docIdx, text)
		return
	}
	// nothing left worth keeping: drop the comment and the line break
	// that separated it from the declaration
	to := docIdx + 1
	if to < s.Len() && s.At(to).Kind == token.Whitespace {
		to++
	}
	s.RemoveRange(docIdx, to)
}

// superfluous reports whether the annotation adds nothing over the native
// declaration. An annotation with prose always stays; one without types is
// pure noise; otherwise its union must match the native hint atom for atom.
func (r *SuperfluousDoc) superfluous(s *token.Stream, fnIdx int, ann phpdoc.Annotation) bool {
	if ann.Var == "" || ann.Description != "" {
		return false
	}
	atoms := ann.TypeList()
	if len(atoms) == 0 {
		return true
	}

	varIdx := findParamVariable(s, fnIdx, ann.Var)
	if varIdx == -1 {
		return false
	}
	hint := nativeHintAtoms(s, varIdx)
	if hint == nil {
		return false
	}
	return sameAtomSet(atoms, hint)
}

// nativeHintAtoms collects the parameter's declared type as a list of
// lowercase atoms, with a leading ? expanded to a null atom. Returns nil
// when the parameter has no declaration.
func nativeHintAtoms(s *token.Stream, varIdx int) []string {
	i := s.PrevMeaningful(varIdx)
	if i != -1 && s.At(i).IsPromotion() {
		i = s.PrevMeaningful(i)
	}

	var parts []string
	for i != -1 && s.At(i).IsTypeHintPart() {
		t := s.At(i)
		if t.Kind == token.Question {
			parts = append(parts, "null")
		} else if t.Kind != token.Backslash {
			parts = append(parts, strings.ToLower(t.Text))
		}
		i = s.PrevMeaningful(i)
	}
	if len(parts) == 0 {
		return nil
	}
	// collected back to front
	for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
		parts[l], parts[r] = parts[r], parts[l]
	}
	return parts
}

// sameAtomSet compares two atom lists as case-insensitive sets, so that
// "null|string" matches a ?string declaration in either spelling order.
func sameAtomSet(a, b []string) bool {
	set := func(atoms []string) map[string]struct{} {
		m := make(map[string]struct{}, len(atoms))
		for _, at := range atoms {
			m[strings.ToLower(strings.TrimPrefix(at, "\\"))] = struct{}{}
		}
		return m
	}
	sa, sb := set(a), set(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if _, ok := sb[k]; !ok {
			return false
		}
	}
	return true
}

// stripDocLines removes the given 0-based lines from a doc comment's raw
// text. Line numbers match phpdoc.Annotation.Line: stripping the comment
// fences does not change the line structure. Reports empty=true when
// neither prose nor any annotation survives.
func stripDocLines(text string, drop []int) (string, bool) {
	dropSet := make(map[int]struct{}, len(drop))
	for _, d := range drop {
		dropSet[d] = struct{}{}
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	hasContent := false
	for i, line := range lines {
		if _, ok := dropSet[i]; ok {
			continue
		}
		out = append(out, line)

		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "/**")
		trimmed = strings.TrimSuffix(trimmed, "*/")
		trimmed = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(trimmed), "*"))
		if trimmed != "" {
			hasContent = true
		}
	}
	if !hasContent {
		return "", true
	}
	return strings.Join(out, "\n"), false
}
