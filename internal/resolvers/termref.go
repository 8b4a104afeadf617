// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// CollectDefinedTerms scans every line's already-attached DefinedTerm
// attributes into a lookup set, for constructing a TermReferenceResolver
// (spec.md §9 "document-level context in line-level resolvers": a prior
// pass's output feeds a later resolver's construction).
func CollectDefinedTerms(doc resolve.DocumentView) map[string]bool {
	terms := make(map[string]bool)
	for _, l := range doc.Lines() {
		for _, rv := range attrstore.Find[DefinedTerm](l.Store) {
			terms[rv.Value.Term] = true
		}
	}
	return terms
}

// TermReferenceResolver tags every word token whose text is in Terms,
// except one sitting directly between two quote tokens (the defining
// occurrence). It does not compare positions, so an occurrence before the
// definition is tagged too. Terms must be populated (via
// CollectDefinedTerms) before this resolver runs; it does not discover
// definitions itself.
type TermReferenceResolver struct {
	Terms map[string]bool
}

func (r TermReferenceResolver) Go(sel selection.Selection) []selection.CursorAssignment[TermReference] {
	var out []selection.CursorAssignment[TermReference]
	for _, m := range selection.FindBy(sel, selection.TokenKind(token.Word)) {
		text := m.Value.Text
		if !r.Terms[text] {
			continue
		}
		if isQuotedAt(sel.Line, m.Selection.Start) {
			continue // the defining occurrence itself, not a reference
		}
		out = append(out, selection.Assign(m.Selection, TermReference{Term: text}).Build())
	}
	return out
}

func isQuotedAt(l *token.Line, pos int) bool {
	return pos > 0 && pos+1 < l.Len() &&
		l.Tokens[pos-1].Kind == token.Quote && l.Tokens[pos+1].Kind == token.Quote
}
