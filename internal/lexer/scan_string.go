package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/token"
)

// scanString scans single- and double-quoted string literals. Interpolation
// inside double quotes is not decomposed: the whole literal is one token,
// which is all the rewriter needs. Escaped quotes and backslashes are
// honored in both forms ('\\' and '\'' are valid single-quoted escapes).
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			// skip the escaped byte, whatever it is
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if b == quote {
			closed = true
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
}

// scanHeredoc scans a heredoc or nowdoc after its '<<<' introducer was
// consumed. The whole construct, body included, becomes one opaque string
// token; nothing inside a heredoc is ever rewritten. The closing label may
// be indented (PHP 7.3 syntax). Labels match case-sensitively.
func (lx *Lexer) scanHeredoc(start Mark) token.Token {
	// spaces are allowed between the introducer and the label
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	// optional quoting around the label: <<<'L' is a nowdoc, <<<"L" a
	// plain heredoc; both end the same way
	var quote byte
	if b := lx.cursor.Peek(); b == '\'' || b == '"' {
		quote = lx.cursor.Bump()
	}

	labelStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	label := lx.text(lx.cursor.SpanFrom(labelStart))

	if quote != 0 {
		lx.cursor.Eat(quote)
	}

	closed := false
	if label != "" {
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() != '\n' {
				continue
			}
			// the terminator is the label at the start of a line, at most
			// indented, followed by a non-identifier byte
			lineStart := lx.cursor.Mark()
			for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
				lx.cursor.Bump()
			}
			if lx.matchLabel(label) {
				closed = true
				break
			}
			lx.cursor.Reset(lineStart)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.report(diag.LexUnterminatedString, sp, "unterminated heredoc")
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
}

// matchLabel consumes label at the cursor when it matches exactly and is
// not a prefix of a longer identifier.
func (lx *Lexer) matchLabel(label string) bool {
	probe := lx.cursor.Mark()
	for i := 0; i < len(label); i++ {
		if lx.cursor.Peek() != label[i] {
			lx.cursor.Reset(probe)
			return false
		}
		lx.cursor.Bump()
	}
	if isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(probe)
		return false
	}
	return true
}
