// Package phpdoc parses PHP documentation comments into tagged annotations.
// The parser is deliberately shallow: it splits the block into lines,
// recognizes @tag entries, and decomposes type unions on top-level '|'.
// Anything it cannot make sense of stays raw; callers decide what is
// usable.
package phpdoc

import (
	"strings"
)

// Annotation is one parsed @tag entry.
type Annotation struct {
	// Tag is the tag name without the leading '@', e.g. "param".
	Tag string
	// Types is the raw type-union string, e.g. "string|null". Empty when
	// the entry has no type part.
	Types string
	// Var is the variable name including the '$', e.g. "$bar". Empty for
	// tags without one.
	Var string
	// Description is the free-form remainder of the line.
	Description string
	// Line is the 0-based line offset within the comment block.
	Line int
}

// TypeList splits the raw union on '|'. Whitespace around atoms is
// trimmed; empty atoms are dropped. Order is preserved as written.
func (a Annotation) TypeList() []string {
	if a.Types == "" {
		return nil
	}
	parts := strings.Split(a.Types, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Doc is a parsed documentation comment.
type Doc struct {
	annotations []Annotation
}

// Annotations returns every parsed annotation in source order.
func (d *Doc) Annotations() []Annotation {
	return d.annotations
}

// Tags returns the annotations with the given tag name, in source order.
func (d *Doc) Tags(name string) []Annotation {
	var out []Annotation
	for _, a := range d.annotations {
		if a.Tag == name {
			out = append(out, a)
		}
	}
	return out
}

// Parse parses the raw text of a '/** ... */' comment. It never fails;
// malformed lines simply produce no annotation.
func Parse(text string) *Doc {
	doc := &Doc{}

	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "@") {
			continue
		}
		if ann, ok := parseTagLine(line, i); ok {
			doc.annotations = append(doc.annotations, ann)
		}
	}
	return doc
}

// parseTagLine parses one '@tag ...' line. For tags carrying a variable
// ("param", "var", "property") the accepted shapes are '@tag Type $var ...'
// and '@tag $var ...' (no type).
func parseTagLine(line string, lineNo int) (Annotation, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Annotation{}, false
	}
	tag := strings.TrimPrefix(fields[0], "@")
	if tag == "" {
		return Annotation{}, false
	}

	ann := Annotation{Tag: tag, Line: lineNo}
	rest := fields[1:]

	if len(rest) == 0 {
		return ann, true
	}

	if strings.HasPrefix(rest[0], "$") {
		ann.Var = rest[0]
		ann.Description = strings.Join(rest[1:], " ")
		return ann, true
	}

	ann.Types = rest[0]
	rest = rest[1:]
	if len(rest) > 0 && strings.HasPrefix(rest[0], "$") {
		ann.Var = rest[0]
		rest = rest[1:]
	}
	ann.Description = strings.Join(rest, " ")
	return ann, true
}
