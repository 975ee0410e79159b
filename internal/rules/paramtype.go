package rules

import (
	"strings"

	"phpfix/internal/phpdoc"
	"phpfix/internal/phpver"
	"phpfix/internal/token"
)

// ParamType rewrites @param annotations into native parameter type
// declarations where that is provably safe. Risky and experimental: the
// documented type may be wrong, and a wrong native type is a fatal error
// at call time where a wrong annotation was not.
type ParamType struct {
	scalarTypes bool
}

// NewParamType returns the rule with its default configuration
// (scalar_types enabled).
func NewParamType() *ParamType {
	return &ParamType{scalarTypes: true}
}

func (r *ParamType) Name() string { return "phpdoc_to_param_type" }

// Priority puts this rule ahead of no_superfluous_phpdoc_tags: the types
// it inserts are exactly what makes those tags superfluous.
func (r *ParamType) Priority() int { return 8 }

func (r *ParamType) Risky() bool        { return true }
func (r *ParamType) Experimental() bool { return true }

// Configure honors the single recognized option, scalar_types. When false
// the scalar categories are never set and scalar atoms take the residual
// path instead.
func (r *ParamType) Configure(opts Options) error {
	v, err := opts.Bool("scalar_types", r.scalarTypes)
	if err != nil {
		return err
	}
	r.scalarTypes = v
	return nil
}

// Candidate requires at least one function declaration and a target at or
// above the scalar-declaration floor.
func (r *ParamType) Candidate(s *token.Stream, target phpver.ID) bool {
	return target >= phpver.PHP70 && s.HasKind(token.KwFunction, token.KwFn)
}

// Special methods whose calling convention is fixed by the runtime;
// rewriting their signatures is never safe.
var paramTypeDeny = map[string]struct{}{
	"__construct": {},
	"__destruct":  {},
	"__clone":     {},
}

// Type atoms that disqualify the whole annotation.
var paramTypeSkip = map[string]struct{}{
	"mixed":    {},
	"resource": {},
	"static":   {},
}

// Apply walks function declarations back to front so that insertions never
// shift the positions of declarations still to be visited. The version
// gate is shared by the whole pass: a construct seen anywhere in the file
// raises the floor for everything after it, even when its own annotation
// was abandoned.
func (r *ParamType) Apply(s *token.Stream, target phpver.ID) {
	gate := phpver.NewGate(phpver.PHP70)
	for idx := s.Len() - 1; idx >= 0; idx-- {
		if !s.At(idx).IsFunctionDecl() {
			continue
		}
		r.fixFunction(s, idx, target, gate)
	}
}

func (r *ParamType) fixFunction(s *token.Stream, fnIdx int, target phpver.ID, gate *phpver.Gate) {
	nameIdx := s.NextMeaningful(fnIdx)
	if nameIdx == -1 {
		return
	}
	if name := s.At(nameIdx); name.Kind == token.Ident {
		if _, deny := paramTypeDeny[strings.ToLower(name.Text)]; deny {
			return
		}
	}

	docIdx := findFunctionDocComment(s, fnIdx)
	if docIdx == -1 {
		// no documentation means no types to carry over; inventing them
		// is out of the question
		return
	}

	for _, ann := range phpdoc.Parse(s.At(docIdx).Text).Tags("param") {
		r.fixParam(s, fnIdx, ann, target, gate)
	}
}

// findFunctionDocComment walks backward over whitespace, plain comments,
// and declaration modifiers. The first token past those must be the doc
// comment, otherwise the function has none.
func findFunctionDocComment(s *token.Stream, fnIdx int) int {
	i := fnIdx
	for {
		i = s.PrevNonWhitespace(i)
		if i == -1 {
			return -1
		}
		t := s.At(i)
		if t.Kind == token.Comment || t.IsModifier() {
			continue
		}
		if t.Kind == token.DocComment {
			return i
		}
		return -1
	}
}

func (r *ParamType) fixParam(s *token.Stream, fnIdx int, ann phpdoc.Annotation, target phpver.ID, gate *phpver.Gate) {
	if ann.Var == "" {
		return
	}
	atoms := ann.TypeList()
	if len(atoms) == 0 {
		return
	}

	// Classification raises the gate as a side effect, before the ceiling
	// check below. An annotation abandoned here has still left its mark on
	// the file-wide watermark.
	spec, ok := r.classify(atoms, gate)
	if !ok {
		return
	}
	if !gate.Allows(target) {
		return
	}

	varIdx := findParamVariable(s, fnIdx, ann.Var)
	if varIdx == -1 {
		// stale documentation, or the parameter was removed
		return
	}
	if hasParamTypeHint(s, varIdx) {
		return
	}

	toks := spec.tokens()
	if len(toks) == 0 {
		return
	}
	toks = append(toks, token.Token{Kind: token.Whitespace, Text: " "})
	s.InsertAt(varIdx, toks...)
}

// findParamVariable scans forward from the function token for a variable
// named varName. The search never crosses into a nested function literal
// (a closure in a default-value expression): the next function token is a
// hard boundary.
func findParamVariable(s *token.Stream, fnIdx int, varName string) int {
	boundary := s.NextOfKind(fnIdx, token.KwFunction, token.KwFn)
	i := fnIdx
	for {
		i = s.NextOfKind(i, token.Variable)
		if i == -1 {
			return -1
		}
		if boundary != -1 && i > boundary {
			return -1
		}
		if s.At(i).Text == varName {
			return i
		}
	}
}

// hasParamTypeHint reports whether the parameter at varIdx already carries
// a type declaration. The token directly before the variable (skipping a
// constructor-promotion keyword) decides: a class-like identifier,
// namespace separator, array or callable keyword, or nullable marker means
// the parameter is typed. This is the guard that makes the rewrite
// idempotent.
func hasParamTypeHint(s *token.Stream, varIdx int) bool {
	prev := s.PrevMeaningful(varIdx)
	if prev == -1 {
		return false
	}
	if s.At(prev).IsPromotion() {
		prev = s.PrevMeaningful(prev)
		if prev == -1 {
			return false
		}
	}
	return s.At(prev).IsTypeHintPart()
}
