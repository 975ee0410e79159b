package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/token"
)

// scanComment handles '//' line comments and '/* */' block comments.
// A block starting with '/**' and containing more than just '/**/' is a
// DocComment.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			// '?>' ends a line comment too: PHP drops back to HTML mode
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '>' {
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
	}

	lx.cursor.Bump() // '*'
	isDoc := lx.cursor.Peek() == '*'

	closed := false
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !closed {
		lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}

	kind := token.Comment
	// '/**/' is an empty plain comment, not a doc comment
	if isDoc && len(text) > 4 {
		kind = token.DocComment
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanHashComment handles '#' comments, including '#[' attributes which are
// passed through verbatim to the end of the line.
func (lx *Lexer) scanHashComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '>' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}
