package lexer

import (
	"phpfix/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation. Only the sequences
// the rewriter distinguishes get dedicated kinds; every other operator is
// an Op token with its exact text, which is enough for round-trip
// rendering.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	mk := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	// close tag drops back to HTML mode
	if lx.try2('?', '>') {
		lx.inPHP = false
		return mk(token.CloseTag)
	}

	b := lx.cursor.Peek()
	switch b {
	case '.':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if lx.cursor.Peek() == '.' {
				lx.cursor.Bump()
				return mk(token.Ellipsis)
			}
			return mk(token.Op)
		}
	case '-':
		if lx.try2('-', '>') {
			return mk(token.Arrow)
		}
	case '=':
		if lx.try2('=', '>') {
			return mk(token.DoubleArrow)
		}
		// '==' / '===' are plain ops; scan them greedily so '==' is one token
		lx.cursor.Bump()
		for lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
		}
		if lx.cursor.Off == uint32(start)+1 {
			return mk(token.Assign)
		}
		return mk(token.Op)
	case ':':
		if lx.try2(':', ':') {
			return mk(token.DoubleColon)
		}
		lx.cursor.Bump()
		return mk(token.Colon)
	case '<':
		if lx.try2('<', '<') {
			if lx.cursor.Peek() == '<' {
				lx.cursor.Bump()
				return lx.scanHeredoc(start)
			}
			// '<<' shift operator
			return mk(token.Op)
		}
	}

	lx.cursor.Bump()
	switch b {
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case '{':
		return mk(token.LBrace)
	case '}':
		return mk(token.RBrace)
	case '[':
		return mk(token.LBracket)
	case ']':
		return mk(token.RBracket)
	case ',':
		return mk(token.Comma)
	case ';':
		return mk(token.Semicolon)
	case '?':
		return mk(token.Question)
	case '&':
		return mk(token.Amp)
	case '|':
		return mk(token.Pipe)
	case '\\':
		return mk(token.Backslash)
	case '.', '-':
		return mk(token.Op)
	default:
		return mk(token.Op)
	}
}
