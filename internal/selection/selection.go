// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package selection

import (
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// Selection is a [Start, End) token window into a Line (spec.md §4.3).
type Selection struct {
	Line  *token.Line
	Start int
	End   int
}

// Of builds a Selection spanning the whole line.
func Of(l *token.Line) Selection {
	return Selection{Line: l, Start: 0, End: l.Len()}
}

// Sub builds a Selection over [start, end) of the same line, clamped to
// the line's bounds.
func (s Selection) Sub(start, end int) Selection {
	if start < 0 {
		start = 0
	}
	if end > s.Line.Len() {
		end = s.Line.Len()
	}
	if start > end {
		start = end
	}
	return Selection{Line: s.Line, Start: start, End: end}
}

// Len returns the number of tokens in the selection.
func (s Selection) Len() int { return s.End - s.Start }

// SpanRef returns the line-local range this selection covers.
func (s Selection) SpanRef() attrstore.LocalRange {
	return attrstore.LocalRange{Start: s.Start, End: s.End}
}

// After returns the selection of every token following o, to the end of
// the line.
func (s Selection) After(o Selection) Selection {
	return s.Sub(o.End, s.Line.Len())
}

// Before returns the selection of every token preceding o, from the start
// of the line.
func (s Selection) Before(o Selection) Selection {
	return s.Sub(0, o.Start)
}

// Text reconstructs the literal text the selection covers.
func (s Selection) Text() string {
	return s.Line.TokenText(s.Start, s.End)
}

// Tokens returns the underlying tokens in the selection.
func (s Selection) Tokens() []token.Token {
	return s.Line.Tokens[s.Start:s.End]
}

// Match pairs a pattern match's value with the Selection it matched.
type Match[T any] struct {
	Selection Selection
	Value     T
}

// MatchFirstForwards returns the first match of m scanning forward from
// s.Start, or ok=false if none is found.
func MatchFirstForwards[T any](s Selection, m Matcher[T]) (Match[T], bool) {
	for pos := s.Start; pos < s.End; pos++ {
		if v, consumed, ok := m(s.Line, pos); ok {
			return Match[T]{Selection: s.Sub(pos, pos+consumed), Value: v}, true
		}
	}
	return Match[T]{}, false
}

// MatchFirstBackwards returns the last match of m scanning backward from
// s.End, or ok=false if none is found.
func MatchFirstBackwards[T any](s Selection, m Matcher[T]) (Match[T], bool) {
	for pos := s.End - 1; pos >= s.Start; pos-- {
		if v, consumed, ok := m(s.Line, pos); ok {
			return Match[T]{Selection: s.Sub(pos, pos+consumed), Value: v}, true
		}
	}
	return Match[T]{}, false
}

// FindBy returns every non-overlapping match of m within s, scanning
// forward and resuming after each match's consumed tokens.
func FindBy[T any](s Selection, m Matcher[T]) []Match[T] {
	var out []Match[T]
	pos := s.Start
	for pos < s.End {
		v, consumed, ok := m(s.Line, pos)
		if !ok || consumed <= 0 {
			pos++
			continue
		}
		out = append(out, Match[T]{Selection: s.Sub(pos, pos+consumed), Value: v})
		pos += consumed
	}
	return out
}
