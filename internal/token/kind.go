package token

// Kind represents the category of a PHP source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// InlineHTML is raw text outside PHP tags.
	InlineHTML
	// OpenTag is '<?php' or '<?='.
	OpenTag
	// CloseTag is '?>'.
	CloseTag

	// Whitespace is a run of spaces, tabs, and newlines.
	Whitespace
	// Comment is a '//', '#', or '/* */' comment.
	Comment
	// DocComment is a '/** */' documentation comment.
	DocComment

	// Variable is a '$name' token, text includes the dollar sign.
	Variable
	// Ident is an identifier or any word that is not a recognized keyword.
	Ident

	// IntLit is an integer literal.
	IntLit
	// FloatLit is a floating point literal.
	FloatLit
	// StringLit is a single- or double-quoted string literal.
	StringLit

	// KwFunction is the 'function' keyword.
	KwFunction // function
	// KwFn is the 'fn' arrow-function keyword (PHP 7.4).
	KwFn // fn
	// KwPublic is the 'public' keyword.
	KwPublic // public
	// KwProtected is the 'protected' keyword.
	KwProtected // protected
	// KwPrivate is the 'private' keyword.
	KwPrivate // private
	// KwStatic is the 'static' keyword.
	KwStatic // static
	// KwAbstract is the 'abstract' keyword.
	KwAbstract // abstract
	// KwFinal is the 'final' keyword.
	KwFinal // final
	// KwVar is the legacy 'var' property keyword.
	KwVar // var
	// KwReadonly is the 'readonly' keyword (PHP 8.1).
	KwReadonly // readonly
	// KwClass is the 'class' keyword.
	KwClass // class
	// KwInterface is the 'interface' keyword.
	KwInterface // interface
	// KwTrait is the 'trait' keyword.
	KwTrait // trait
	// KwExtends is the 'extends' keyword.
	KwExtends // extends
	// KwImplements is the 'implements' keyword.
	KwImplements // implements
	// KwNamespace is the 'namespace' keyword.
	KwNamespace // namespace
	// KwUse is the 'use' keyword.
	KwUse // use
	// KwConst is the 'const' keyword.
	KwConst // const
	// KwReturn is the 'return' keyword.
	KwReturn // return
	// KwEcho is the 'echo' keyword.
	KwEcho // echo
	// KwNew is the 'new' keyword.
	KwNew // new
	// KwArray is the 'array' keyword, both the literal and the type hint.
	KwArray // array
	// KwCallable is the 'callable' type keyword.
	KwCallable // callable

	// LParen is '('.
	LParen // (
	// RParen is ')'.
	RParen // )
	// LBrace is '{'.
	LBrace // {
	// RBrace is '}'.
	RBrace // }
	// LBracket is '['.
	LBracket // [
	// RBracket is ']'.
	RBracket // ]
	// Comma is ','.
	Comma // ,
	// Semicolon is ';'.
	Semicolon // ;
	// Question is '?', also the nullable type marker.
	Question // ?
	// Amp is '&', also the by-reference marker.
	Amp // &
	// Pipe is '|'.
	Pipe // |
	// Assign is '='.
	Assign // =
	// Colon is ':'.
	Colon // :
	// DoubleColon is '::'.
	DoubleColon // ::
	// Arrow is '->'.
	Arrow // ->
	// DoubleArrow is '=>'.
	DoubleArrow // =>
	// Ellipsis is '...', the variadic marker.
	Ellipsis // ...
	// Backslash is '\', the namespace separator.
	Backslash // \
	// Op is any other operator or punctuation, kept verbatim in Text.
	Op
)

var kindNames = map[Kind]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	InlineHTML:   "InlineHTML",
	OpenTag:      "OpenTag",
	CloseTag:     "CloseTag",
	Whitespace:   "Whitespace",
	Comment:      "Comment",
	DocComment:   "DocComment",
	Variable:     "Variable",
	Ident:        "Ident",
	IntLit:       "IntLit",
	FloatLit:     "FloatLit",
	StringLit:    "StringLit",
	KwFunction:   "KwFunction",
	KwFn:         "KwFn",
	KwPublic:     "KwPublic",
	KwProtected:  "KwProtected",
	KwPrivate:    "KwPrivate",
	KwStatic:     "KwStatic",
	KwAbstract:   "KwAbstract",
	KwFinal:      "KwFinal",
	KwVar:        "KwVar",
	KwReadonly:   "KwReadonly",
	KwClass:      "KwClass",
	KwInterface:  "KwInterface",
	KwTrait:      "KwTrait",
	KwExtends:    "KwExtends",
	KwImplements: "KwImplements",
	KwNamespace:  "KwNamespace",
	KwUse:        "KwUse",
	KwConst:      "KwConst",
	KwReturn:     "KwReturn",
	KwEcho:       "KwEcho",
	KwNew:        "KwNew",
	KwArray:      "KwArray",
	KwCallable:   "KwCallable",
	LParen:       "LParen",
	RParen:       "RParen",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Question:     "Question",
	Amp:          "Amp",
	Pipe:         "Pipe",
	Assign:       "Assign",
	Colon:        "Colon",
	DoubleColon:  "DoubleColon",
	Arrow:        "Arrow",
	DoubleArrow:  "DoubleArrow",
	Ellipsis:     "Ellipsis",
	Backslash:    "Backslash",
	Op:           "Op",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
