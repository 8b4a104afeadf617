// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"sort"
	"strings"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

var pronounWords = map[string]bool{
	"it": true, "he": true, "she": true, "they": true,
	"this": true, "that": true,
}

// PronounResolver tags pronoun-class word tokens. It runs before
// DocumentPronounResolver, which does the actual cross-line antecedent
// linking (spec.md §8 S3).
type PronounResolver struct{}

func (PronounResolver) Go(sel selection.Selection) []selection.CursorAssignment[Pronoun] {
	var out []selection.CursorAssignment[Pronoun]
	for _, m := range selection.FindBy(sel, selection.TokenKind(token.Word)) {
		if pronounWords[strings.ToLower(m.Value.Text)] {
			out = append(out, selection.Assign(m.Selection, Pronoun{Text: m.Value.Text}).Build())
		}
	}
	return out
}

// DocumentPronounResolver walks the document in order, tracking the most
// recently seen DefinedTerm as the current antecedent, and links each
// Pronoun occurrence after it to that antecedent (spec.md §8 S3). It
// produces document-level Scored[PronounChain] spans rather than a
// line-local attribute, since the antecedent usually lives on a different
// line (spec.md §9 design note on cataphora/anaphora both being out of
// scope beyond this single nearest-preceding-antecedent rule).
type DocumentPronounResolver struct{}

type lineOccurrence struct {
	pos      int
	isTerm   bool
	text     string
}

func (DocumentPronounResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	var out []spanindex.SemanticSpan
	tag := tagOf[confidence.Scored[PronounChain]]()

	var antecedent string
	haveAntecedent := false

	for lineIdx, l := range doc.Lines() {
		var occs []lineOccurrence
		for _, rv := range attrstore.Find[DefinedTerm](l.Store) {
			occs = append(occs, lineOccurrence{pos: rv.Range.Start, isTerm: true, text: rv.Value.Term})
		}
		for _, rv := range attrstore.Find[Pronoun](l.Store) {
			occs = append(occs, lineOccurrence{pos: rv.Range.Start, isTerm: false, text: rv.Value.Text})
		}
		sort.Slice(occs, func(i, j int) bool { return occs[i].pos < occs[j].pos })

		for _, o := range occs {
			if o.isTerm {
				antecedent = o.text
				haveAntecedent = true
				continue
			}
			if !haveAntecedent {
				continue
			}
			pronounSpan := docpos.MustNew(
				docpos.DocPosition{Line: lineIdx, Token: o.pos},
				docpos.DocPosition{Line: lineIdx, Token: o.pos + 1},
			)
			scored := confidence.RuleBasedScore(
				PronounChain{Pronoun: o.text, Antecedent: antecedent},
				0.85, "document-pronoun-resolver")
			out = append(out, spanindex.SemanticSpan{Span: pronounSpan, TypeTag: tag, Value: scored})
		}
	}
	return out
}
