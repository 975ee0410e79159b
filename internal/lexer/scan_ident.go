package lexer

import (
	"phpfix/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies it via
// LookupKeyword. PHP keywords are case-insensitive; Token.Text keeps the
// exact source spelling.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	b := lx.cursor.Peek()
	if !isIdentStartByte(b) && b < utf8RuneSelf {
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()
	for {
		b = lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanVariable scans '$name'. A lone '$' falls through as an operator.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	b := lx.cursor.Peek()
	if !isIdentStartByte(b) && b < utf8RuneSelf {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Op, Span: sp, Text: lx.text(sp)}
	}
	for {
		b = lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Variable, Span: sp, Text: lx.text(sp)}
}
