// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package docpos

import (
	"fmt"

	"github.com/phosphorco/layered-nlp/cerrs"
)

// DocPosition is a document-wide coordinate: a line index and a token
// index within that line. Positions are totally ordered, lexicographic on
// (Line, Token) (spec.md §3).
type DocPosition struct {
	Line  int
	Token int
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than o.
func (p DocPosition) Compare(o DocPosition) int {
	if p.Line != o.Line {
		if p.Line < o.Line {
			return -1
		}
		return 1
	}
	if p.Token != o.Token {
		if p.Token < o.Token {
			return -1
		}
		return 1
	}
	return 0
}

func (p DocPosition) Less(o DocPosition) bool    { return p.Compare(o) < 0 }
func (p DocPosition) Equal(o DocPosition) bool   { return p.Compare(o) == 0 }
func (p DocPosition) LessEq(o DocPosition) bool  { return p.Compare(o) <= 0 }

func (p DocPosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Token)
}

// Relation classifies how two spans relate to one another (spec.md §3).
type Relation int

const (
	Disjoint Relation = iota
	Equal
	Contains
	ContainedBy
	Overlaps
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Equal:
		return "Equal"
	case Contains:
		return "Contains"
	case ContainedBy:
		return "ContainedBy"
	case Overlaps:
		return "Overlaps"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// DocSpan is a half-open [Start, End) range over DocPositions with Start
// before End. Empty spans (Start == End with zero width) are disallowed by New;
// a span exactly one token wide has End.Token == Start.Token+1 on the
// same line (spec.md §8).
type DocSpan struct {
	Start DocPosition
	End   DocPosition
}

// New constructs a DocSpan, returning cerrs.ErrInvalidInvertedSpan if
// start is after end, or cerrs.ErrEmptySpan if they are identical.
func New(start, end DocPosition) (DocSpan, error) {
	switch start.Compare(end) {
	case 1:
		return DocSpan{}, cerrs.ErrInvalidInvertedSpan
	case 0:
		return DocSpan{}, cerrs.ErrEmptySpan
	}
	return DocSpan{Start: start, End: end}, nil
}

// MustNew is New but panics on error; useful for literal spans built from
// already-validated resolver state.
func MustNew(start, end DocPosition) DocSpan {
	sp, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return sp
}

// SingleLine builds a DocSpan within one line, [line:startTok, line:endTok).
func SingleLine(line, startTok, endTok int) (DocSpan, error) {
	return New(DocPosition{Line: line, Token: startTok}, DocPosition{Line: line, Token: endTok})
}

// Contains reports whether o lies entirely within s.
func (s DocSpan) Contains(o DocSpan) bool {
	return s.Start.LessEq(o.Start) && o.End.LessEq(s.End)
}

// ContainsPos reports whether p lies within [s.Start, s.End).
func (s DocSpan) ContainsPos(p DocPosition) bool {
	return s.Start.LessEq(p) && p.Less(s.End)
}

// Overlaps reports whether s and o share any position.
func (s DocSpan) Overlaps(o DocSpan) bool {
	return s.Start.Less(o.End) && o.Start.Less(s.End)
}

// Merge returns the smallest span containing both s and o.
func (s DocSpan) Merge(o DocSpan) DocSpan {
	start, end := s.Start, s.End
	if o.Start.Less(start) {
		start = o.Start
	}
	if s.End.Less(o.End) {
		end = o.End
	}
	return DocSpan{Start: start, End: end}
}

// RelationTo classifies how s relates to o (spec.md §3).
func (s DocSpan) RelationTo(o DocSpan) Relation {
	if s.Start.Equal(o.Start) && s.End.Equal(o.End) {
		return Equal
	}
	if s.Contains(o) {
		return Contains
	}
	if o.Contains(s) {
		return ContainedBy
	}
	if s.Overlaps(o) {
		return Overlaps
	}
	return Disjoint
}

func (s DocSpan) String() string {
	return fmt.Sprintf("[%s,%s)", s.Start, s.End)
}
