package token_test

import (
	"testing"

	"phpfix/internal/source"
	"phpfix/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{}}
}

func TestIsMeaningful(t *testing.T) {
	trivial := []token.Kind{token.Whitespace, token.Comment, token.DocComment}
	for _, k := range trivial {
		if tok(k).IsMeaningful() {
			t.Fatalf("%v must NOT be meaningful", k)
		}
	}
	meaningful := []token.Kind{token.Ident, token.Variable, token.KwFunction, token.LParen}
	for _, k := range meaningful {
		if !tok(k).IsMeaningful() {
			t.Fatalf("%v should be meaningful", k)
		}
	}
}

func TestIsFunctionDecl(t *testing.T) {
	if !tok(token.KwFunction).IsFunctionDecl() {
		t.Error("function should be a declaration token")
	}
	if !tok(token.KwFn).IsFunctionDecl() {
		t.Error("fn should be a declaration token")
	}
	if tok(token.Ident).IsFunctionDecl() {
		t.Error("ident must not be a declaration token")
	}
}

func TestIsTypeHintPart(t *testing.T) {
	parts := []token.Kind{token.Ident, token.Backslash, token.KwArray, token.KwCallable, token.Question}
	for _, k := range parts {
		if !tok(k).IsTypeHintPart() {
			t.Fatalf("%v should be a type hint part", k)
		}
	}
	non := []token.Kind{token.LParen, token.Comma, token.Amp, token.Variable, token.KwPublic}
	for _, k := range non {
		if tok(k).IsTypeHintPart() {
			t.Fatalf("%v must NOT be a type hint part", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.KwFunction.String(); got != "KwFunction" {
		t.Errorf("String = %q", got)
	}
	if got := token.Kind(250).String(); got != "Unknown" {
		t.Errorf("String = %q", got)
	}
}
