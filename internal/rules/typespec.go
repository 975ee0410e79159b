package rules

import (
	"strings"

	"phpfix/internal/phpver"
	"phpfix/internal/token"
)

// typeSpec is the classified form of one @param type union: a fixed set of
// category flags plus at most one residual class-like atom.
type typeSpec struct {
	nullable bool
	isVoid   bool
	iterable bool
	array    bool
	str      bool
	integer  bool
	float    bool
	boolean  bool
	callable bool
	object   bool
	class    string
}

// classify folds the union's atoms into a typeSpec. The gate is raised for
// each construct as it is recognized, before any later atom can abandon the
// annotation; an abandoned annotation therefore still contributes to the
// file's version watermark. Returns ok=false when the union cannot be
// declared: a disqualifying atom, a malformed atom, or more than one
// residual class atom.
func (r *ParamType) classify(atoms []string, gate *phpver.Gate) (typeSpec, bool) {
	var spec typeSpec
	for _, atom := range atoms {
		if _, skip := paramTypeSkip[strings.ToLower(atom)]; skip {
			return typeSpec{}, false
		}

		// a trailing [] marks any atom as an array of that thing; the
		// element type itself is not declarable
		if base, isArr := splitArraySuffix(atom); isArr {
			if base == "" {
				return typeSpec{}, false
			}
			spec.array = true
			continue
		}

		switch strings.ToLower(atom) {
		case "null":
			gate.Raise(phpver.PHP71)
			spec.nullable = true
		case "void":
			spec.isVoid = true
		case "iterable":
			gate.Raise(phpver.PHP71)
			spec.iterable = true
		case "array":
			spec.array = true
		case "string":
			if !r.scalarTypes {
				if !spec.setClass(atom) {
					return typeSpec{}, false
				}
				continue
			}
			spec.str = true
		case "int":
			if !r.scalarTypes {
				if !spec.setClass(atom) {
					return typeSpec{}, false
				}
				continue
			}
			spec.integer = true
		case "float":
			if !r.scalarTypes {
				if !spec.setClass(atom) {
					return typeSpec{}, false
				}
				continue
			}
			spec.float = true
		case "bool":
			if !r.scalarTypes {
				if !spec.setClass(atom) {
					return typeSpec{}, false
				}
				continue
			}
			spec.boolean = true
		case "callable":
			spec.callable = true
		case "object":
			gate.Raise(phpver.PHP72)
			spec.object = true
		default:
			if !isQualifiedIdent(atom) {
				return typeSpec{}, false
			}
			if !spec.setClass(atom) {
				return typeSpec{}, false
			}
		}
	}

	// a documented iterable|array collapses to the broader array
	if spec.iterable && spec.array {
		spec.iterable = false
	}
	return spec, true
}

// setClass records a residual class atom. A second residual means the union
// has no single declarable type.
func (s *typeSpec) setClass(atom string) bool {
	if s.class != "" {
		return false
	}
	s.class = atom
	return true
}

// tokens renders the spec as a declaration token sequence. Word order is
// fixed so that equal specs always render identically. A union that reduced
// to the nullable flag alone has no type word to declare and renders empty.
func (s typeSpec) tokens() []token.Token {
	var out []token.Token
	word := func(k token.Kind, text string) {
		if len(out) > 0 && out[len(out)-1].Kind != token.Question {
			out = append(out, token.Token{Kind: token.Whitespace, Text: " "})
		}
		out = append(out, token.Token{Kind: k, Text: text})
	}

	hasWord := s.isVoid || s.iterable || s.array || s.str || s.integer ||
		s.float || s.boolean || s.callable || s.object || s.class != ""
	if !hasWord {
		return nil
	}

	if s.nullable {
		out = append(out, token.Token{Kind: token.Question, Text: "?"})
	}
	if s.isVoid {
		word(token.Ident, "void")
	}
	if s.iterable {
		word(token.Ident, "iterable")
	}
	if s.array {
		word(token.KwArray, "array")
	}
	if s.str {
		word(token.Ident, "string")
	}
	if s.integer {
		word(token.Ident, "int")
	}
	if s.float {
		word(token.Ident, "float")
	}
	if s.boolean {
		word(token.Ident, "bool")
	}
	if s.callable {
		word(token.KwCallable, "callable")
	}
	if s.object {
		word(token.Ident, "object")
	}
	if s.class != "" {
		if len(out) > 0 && out[len(out)-1].Kind != token.Question {
			out = append(out, token.Token{Kind: token.Whitespace, Text: " "})
		}
		// a fully qualified name splits into an empty first segment; the
		// separator before the second segment then doubles as the leading \
		for i, seg := range strings.Split(s.class, "\\") {
			if i > 0 {
				out = append(out, token.Token{Kind: token.Backslash, Text: "\\"})
			}
			if seg != "" {
				out = append(out, token.Token{Kind: token.Ident, Text: seg})
			}
		}
	}
	return out
}

// splitArraySuffix strips one trailing [] pair, reporting whether the atom
// had one.
func splitArraySuffix(atom string) (string, bool) {
	if strings.HasSuffix(atom, "[]") {
		return atom[:len(atom)-2], true
	}
	return atom, false
}

// isQualifiedIdent reports whether atom is a syntactically valid class
// name, optionally namespace-qualified with a leading or interior \.
func isQualifiedIdent(atom string) bool {
	if atom == "" {
		return false
	}
	segs := strings.Split(atom, "\\")
	for i, seg := range segs {
		if seg == "" {
			if i == 0 {
				continue // fully qualified: leading separator
			}
			return false
		}
		if !isIdentSeg(seg) {
			return false
		}
	}
	// a bare "\" splits into two empty segments and is rejected above;
	// require at least one real segment
	return segs[len(segs)-1] != ""
}

func isIdentSeg(seg string) bool {
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c >= 0x80:
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
