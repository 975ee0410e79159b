package token

import "strings"

// Stream is an ordered, index-addressable, mutable sequence of tokens for
// one file. A stream is exclusively owned by a single rewrite pass;
// insertion shifts every subsequent index, so positions must never be
// cached across inserts.
type Stream struct {
	toks []Token
}

// NewStream wraps toks in a Stream. The slice is owned by the stream from
// then on.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Len returns the number of tokens.
func (s *Stream) Len() int {
	return len(s.toks)
}

// At returns the token at index i.
func (s *Stream) At(i int) Token {
	return s.toks[i]
}

// Tokens returns the underlying slice, read-only by convention.
func (s *Stream) Tokens() []Token {
	return s.toks
}

// NextMeaningful returns the index of the first meaningful token after i,
// or -1 when none remains.
func (s *Stream) NextMeaningful(i int) int {
	for j := i + 1; j < len(s.toks); j++ {
		if s.toks[j].IsMeaningful() {
			return j
		}
	}
	return -1
}

// PrevMeaningful returns the index of the first meaningful token before i,
// or -1 when none exists.
func (s *Stream) PrevMeaningful(i int) int {
	for j := i - 1; j >= 0; j-- {
		if s.toks[j].IsMeaningful() {
			return j
		}
	}
	return -1
}

// PrevNonWhitespace returns the index of the first non-whitespace token
// before i, or -1. Comments count as non-whitespace here.
func (s *Stream) PrevNonWhitespace(i int) int {
	for j := i - 1; j >= 0; j-- {
		if s.toks[j].Kind != Whitespace {
			return j
		}
	}
	return -1
}

// NextOfKind returns the index of the first token after i whose kind is one
// of kinds, or -1.
func (s *Stream) NextOfKind(i int, kinds ...Kind) int {
	for j := i + 1; j < len(s.toks); j++ {
		for _, k := range kinds {
			if s.toks[j].Kind == k {
				return j
			}
		}
	}
	return -1
}

// PrevOfKind returns the index of the first token before i whose kind is
// one of kinds, or -1.
func (s *Stream) PrevOfKind(i int, kinds ...Kind) int {
	for j := i - 1; j >= 0; j-- {
		for _, k := range kinds {
			if s.toks[j].Kind == k {
				return j
			}
		}
	}
	return -1
}

// HasKind reports whether any token in the stream has the given kind.
func (s *Stream) HasKind(kinds ...Kind) bool {
	for i := range s.toks {
		for _, k := range kinds {
			if s.toks[i].Kind == k {
				return true
			}
		}
	}
	return false
}

// InsertAt inserts seq before index i, shifting subsequent tokens right.
func (s *Stream) InsertAt(i int, seq ...Token) {
	if len(seq) == 0 {
		return
	}
	s.toks = append(s.toks, seq...)
	copy(s.toks[i+len(seq):], s.toks[i:len(s.toks)-len(seq)])
	copy(s.toks[i:], seq)
}

// RemoveRange drops tokens in [from, to). Used by cleanup rules that strip
// doc comment lines.
func (s *Stream) RemoveRange(from, to int) {
	if from >= to {
		return
	}
	s.toks = append(s.toks[:from], s.toks[to:]...)
}

// SetText replaces the text of the token at index i, keeping its kind and
// span. The span no longer matches the text after this; rendering uses
// Text only.
func (s *Stream) SetText(i int, text string) {
	s.toks[i].Text = text
}

// Render concatenates every token's text, reproducing the source.
func (s *Stream) Render() string {
	var b strings.Builder
	for i := range s.toks {
		b.WriteString(s.toks[i].Text)
	}
	return b.String()
}
