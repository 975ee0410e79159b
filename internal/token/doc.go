// Package token defines the PHP token vocabulary used by the fixer and the
// mutable Stream the rewrite rules operate on.
//
// Unlike a compiler token stream, whitespace and comments are first-class
// tokens here: rules edit the stream in place and the stream must render
// back to the original file byte-for-byte when no rule touched it.
package token
