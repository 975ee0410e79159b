package lexer

import (
	"phpfix/internal/source"
	"phpfix/internal/token"
)

// Lexer turns one PHP file into tokens. It starts in HTML mode and switches
// to PHP mode at an open tag; '?>' switches back. Whitespace and comments
// are emitted as regular tokens so the stream renders byte-for-byte.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	inPHP  bool
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Scan tokenizes the whole file, including the trailing EOF token.
func Scan(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next token. After the end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if !lx.inPHP {
		return lx.scanHTML()
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
		return lx.scanWhitespace()

	case ch == '/':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			return lx.scanComment()
		}
		return lx.scanOperatorOrPunct()

	case ch == '#':
		return lx.scanHashComment()

	case ch == '$':
		return lx.scanVariable()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()

	case ch == '\'' || ch == '"':
		return lx.scanString()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// scanHTML consumes inline HTML until the next open tag, or the open tag
// itself when the cursor sits on one.
func (lx *Lexer) scanHTML() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.HasPrefix("<?php") {
		for i := 0; i < len("<?php"); i++ {
			lx.cursor.Bump()
		}
		lx.inPHP = true
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.OpenTag, Span: sp, Text: lx.text(sp)}
	}
	if lx.cursor.HasPrefix("<?=") || lx.cursor.HasPrefix("<?") {
		n := 2
		if lx.cursor.HasPrefix("<?=") {
			n = 3
		}
		for i := 0; i < n; i++ {
			lx.cursor.Bump()
		}
		lx.inPHP = true
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.OpenTag, Span: sp, Text: lx.text(sp)}
	}

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '<' && lx.cursor.HasPrefix("<?") {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.InlineHTML, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
