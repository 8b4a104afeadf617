// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// member is a two-word coordinated noun phrase, e.g. "Party A".
type member struct{ Start, End int }

// ClauseLinkResolver finds comma-separated coordination lists ("Party A,
// Party B, and Party C") and emits the adjacent-pair Conjunct chain
// (spec.md §4.6, §8 S6): A<->B, B<->C, never A<->C directly. Members are
// assumed to be exactly two words (a proper noun plus an identifier, as in
// the example); longer noun phrases are out of scope for this reference
// resolver.
type ClauseLinkResolver struct{}

func (ClauseLinkResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	var out []spanindex.SemanticSpan

	for lineIdx, l := range doc.Lines() {
		members := findCoordinatedMembers(l)
		if len(members) < 2 {
			continue
		}
		spans := make([]docpos.DocSpan, len(members))
		for i, m := range members {
			spans[i] = docpos.MustNew(
				docpos.DocPosition{Line: lineIdx, Token: m.Start},
				docpos.DocPosition{Line: lineIdx, Token: m.End},
			)
		}
		// shared with spanindex.InsertConjunct/ConjunctChain: Resolve can only
		// return []SemanticSpan (it has no *Index to insert into), so it calls
		// the same pure chain builder the Insert* helpers wrap, rather than
		// re-deriving the bidirectional pair inline (spec.md §4.6 invariant 4).
		out = append(out, spanindex.ConjunctChainSpans(spans)...)
	}
	return out
}

// findCoordinatedMembers scans a "W W, W W, and W W" run. It requires at
// least three members — a distinguishing heuristic that rules out plain
// two-item coordination ("X and Y") never intended as a list.
func findCoordinatedMembers(l *token.Line) []member {
	pos := 0
	var members []member
	first := true

	for {
		pos = skipWhitespace(l, pos)
		sawSeparator := false

		if pos < l.Len() && l.Tokens[pos].Kind == token.Punctuation && l.Tokens[pos].Text == "," {
			pos = skipWhitespace(l, pos+1)
			sawSeparator = true
		}
		if pos < l.Len() && l.Tokens[pos].Kind == token.Word &&
			(strings.EqualFold(l.Tokens[pos].Text, "and") || strings.EqualFold(l.Tokens[pos].Text, "or")) {
			pos = skipWhitespace(l, pos+1)
			sawSeparator = true
		}
		if !first && !sawSeparator {
			break
		}

		m, after, ok := matchTwoWordMember(l, pos)
		if !ok {
			break
		}
		members = append(members, m)
		pos = after
		first = false
	}

	if len(members) < 3 {
		return nil
	}
	return members
}

func matchTwoWordMember(l *token.Line, pos int) (member, int, bool) {
	if pos >= l.Len() || l.Tokens[pos].Kind != token.Word {
		return member{}, pos, false
	}
	second := skipWhitespace(l, pos+1)
	if second >= l.Len() || l.Tokens[second].Kind != token.Word {
		return member{}, pos, false
	}
	return member{Start: pos, End: second + 1}, second + 1, true
}
