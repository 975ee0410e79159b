package token

import "strings"

var keywords = map[string]Kind{
	"function":   KwFunction,
	"fn":         KwFn,
	"public":     KwPublic,
	"protected":  KwProtected,
	"private":    KwPrivate,
	"static":     KwStatic,
	"abstract":   KwAbstract,
	"final":      KwFinal,
	"var":        KwVar,
	"readonly":   KwReadonly,
	"class":      KwClass,
	"interface":  KwInterface,
	"trait":      KwTrait,
	"extends":    KwExtends,
	"implements": KwImplements,
	"namespace":  KwNamespace,
	"use":        KwUse,
	"const":      KwConst,
	"return":     KwReturn,
	"echo":       KwEcho,
	"new":        KwNew,
	"array":      KwArray,
	"callable":   KwCallable,
}

// LookupKeyword returns the keyword kind for ident, if any. PHP keywords
// are case-insensitive, so the lookup lowercases first.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
