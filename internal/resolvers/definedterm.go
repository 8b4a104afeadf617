// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// DefinedTermResolver recognizes a parenthetical quoted definition —
// ("Company") — and attaches a DefinedTerm over the bare word inside the
// quotes (spec.md §8 S3).
type DefinedTermResolver struct{}

func (DefinedTermResolver) Go(sel selection.Selection) []selection.CursorAssignment[DefinedTerm] {
	var out []selection.CursorAssignment[DefinedTerm]
	for _, m := range selection.FindBy(sel, definedTermPattern()) {
		termStart := m.Selection.Start + 2
		rng := attrstore.LocalRange{Start: termStart, End: termStart + 1}
		out = append(out, selection.AssignRange(rng, DefinedTerm{Term: m.Value}).Build())
	}
	return out
}

// definedTermPattern matches the five-token run "(" Quote Word Quote ")".
func definedTermPattern() selection.Matcher[string] {
	return func(l *token.Line, pos int) (string, int, bool) {
		if pos+4 >= l.Len() {
			return "", 0, false
		}
		toks := l.Tokens
		if !(toks[pos].Kind == token.Punctuation && toks[pos].Text == "(") {
			return "", 0, false
		}
		if toks[pos+1].Kind != token.Quote {
			return "", 0, false
		}
		if toks[pos+2].Kind != token.Word {
			return "", 0, false
		}
		if toks[pos+3].Kind != token.Quote {
			return "", 0, false
		}
		if !(toks[pos+4].Kind == token.Punctuation && toks[pos+4].Text == ")") {
			return "", 0, false
		}
		return toks[pos+2].Text, 5, true
	}
}
