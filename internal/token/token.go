package token

import (
	"phpfix/internal/source"
)

// Token represents a single source token. Text is always the exact source
// slice; synthesized tokens carry an empty span.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsMeaningful reports whether the token participates in syntax, i.e. is
// not whitespace or a comment.
func (t Token) IsMeaningful() bool {
	switch t.Kind {
	case Whitespace, Comment, DocComment:
		return false
	default:
		return true
	}
}

// IsFunctionDecl reports whether the token opens a function declaration
// ('function' or the 'fn' arrow form).
func (t Token) IsFunctionDecl() bool {
	return t.Kind == KwFunction || t.Kind == KwFn
}

// IsModifier reports whether the token is a visibility or declaration
// modifier that may sit between a doc comment and its function.
func (t Token) IsModifier() bool {
	switch t.Kind {
	case KwPublic, KwProtected, KwPrivate, KwStatic, KwAbstract, KwFinal, KwVar:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the token is a constructor-promotion keyword
// that may precede a parameter variable.
func (t Token) IsPromotion() bool {
	switch t.Kind {
	case KwPublic, KwProtected, KwPrivate, KwReadonly:
		return true
	default:
		return false
	}
}

// IsTypeHintPart reports whether the token can be part of a parameter type
// declaration. A parameter whose variable is directly preceded by one of
// these already carries a type.
func (t Token) IsTypeHintPart() bool {
	switch t.Kind {
	case Ident, Backslash, KwArray, KwCallable, Question:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a recognized PHP keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunction, KwFn, KwPublic, KwProtected, KwPrivate, KwStatic,
		KwAbstract, KwFinal, KwVar, KwReadonly, KwClass, KwInterface,
		KwTrait, KwExtends, KwImplements, KwNamespace, KwUse, KwConst,
		KwReturn, KwEcho, KwNew, KwArray, KwCallable:
		return true
	default:
		return false
	}
}
