// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scope

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/token"
)

var exceptionMarkers = map[string]bool{
	"except":   true,
	"unless":   true,
	"save":     true,
	"provided": true,
}

var coordinatingConjunctions = map[string]bool{
	"and": true,
	"or":  true,
	"but": true,
}

func isClauseBoundaryPunct(text string) bool {
	switch text {
	case ",", ";", ":", ".":
		return true
	default:
		return false
	}
}

// FindBoundary runs the scope boundary algorithm (spec.md §4.8) starting
// immediately after triggerPos on line. It extends rightward tracking
// parenthetical depth, and stops at (depth 0): clause-boundary punctuation,
// an exception marker, a coordinating conjunction immediately preceded by a
// comma, or the end of the line.
//
// A coordinating conjunction reached mid-scan *without* a preceding comma
// does not stop the scan — list commas already do that — but it marks a
// narrower reading (everything up to the conjunction) as an alternative
// domain, and the scan keeps going to find the wider primary domain
// (spec.md §8 S7). lineIdx is the DocPosition line index used to build the
// resulting DocSpan.
func FindBoundary(l *token.Line, triggerPos int, lineIdx int) Domain {
	start := triggerPos + 1
	stop := start
	depth := 0
	altStop := -1

	for pos := start; pos < l.Len(); pos++ {
		tk := l.Tokens[pos]
		switch {
		case tk.Kind == token.Punctuation && tk.Text == "(":
			depth++
		case tk.Kind == token.Punctuation && tk.Text == ")":
			if depth > 0 {
				depth--
			}
		}
		if depth > 0 {
			stop = pos + 1
			continue
		}

		if tk.Kind == token.Punctuation && isClauseBoundaryPunct(tk.Text) {
			stop = pos
			break
		}
		if tk.Kind == token.Word && exceptionMarkers[strings.ToLower(tk.Text)] {
			stop = pos
			break
		}
		if tk.Kind == token.Word && coordinatingConjunctions[strings.ToLower(tk.Text)] && pos > start {
			if prev := prevNonWhitespace(l, pos); prev >= 0 && l.Tokens[prev].Kind == token.Punctuation && l.Tokens[prev].Text == "," {
				stop = pos
				break
			}
			if altStop < 0 {
				altStop = pos
			}
		}
		stop = pos + 1
	}

	primary, err := docpos.SingleLine(lineIdx, start, stop)
	if err != nil {
		return Domain{Primary: docpos.MustNew(docpos.DocPosition{Line: lineIdx, Token: start}, docpos.DocPosition{Line: lineIdx, Token: start + 1})}
	}

	domain := Domain{Primary: primary}
	if altStop > start && altStop < stop {
		if alt, err := docpos.SingleLine(lineIdx, start, altStop); err == nil {
			domain.Alternatives = append(domain.Alternatives, alt)
		}
	}
	return domain
}

func prevNonWhitespace(l *token.Line, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if l.Tokens[i].Kind != token.Whitespace {
			return i
		}
	}
	return -1
}
