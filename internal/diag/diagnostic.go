package diag

import (
	"phpfix/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem. The rewrite rules themselves never
// produce diagnostics (every rule failure is a silent skip); these come
// from the lexer and from file I/O.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
