// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/scope"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

// NegationScopeResolver locates "shall not" triggers and attaches a
// Negation scope.Operator spanning the rest of the clause, using the
// shared boundary algorithm (spec.md §4.8, §8 S7). It is a
// resolve.DocumentResolver rather than a line-level Resolver because
// building the operator's trigger/domain DocSpans needs the line index,
// which a per-line Resolver is never given.
type NegationScopeResolver struct{}

func (NegationScopeResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	var out []spanindex.SemanticSpan
	tag := tagOf[confidence.ReviewableResult[scope.Operator[NegationOp]]]()

	for lineIdx, l := range doc.Lines() {
		shallPos, ok := findWord(l, "shall", 0)
		if !ok {
			continue
		}
		notPos := skipWhitespace(l, shallPos+1)
		if notPos >= l.Len() || !strings.EqualFold(l.Tokens[notPos].Text, "not") {
			continue
		}

		domain := scope.FindBoundary(l, notPos, lineIdx)
		trigger := docpos.MustNew(
			docpos.DocPosition{Line: lineIdx, Token: notPos},
			docpos.DocPosition{Line: lineIdx, Token: notPos + 1},
		)
		op := scope.New(scope.Negation, trigger, domain, NegationOp{})
		best := confidence.RuleBasedScore(op, 0.9, "negation-scope-resolver")

		var result confidence.ReviewableResult[scope.Operator[NegationOp]]
		if domain.IsAmbiguous() {
			result = confidence.UncertainFlagged(best, nil, confidence.FlagScope,
				"coordinating conjunction inside the negation's scope without a preceding comma")
		} else {
			result = confidence.Certain(best)
		}

		out = append(out, spanindex.SemanticSpan{Span: trigger, TypeTag: tag, Value: result})
	}
	return out
}

// quantifierWords are the trigger spellings the boundary algorithm scans
// for (spec.md §4.8: "each", "every", "all", "any", "no").
var quantifierWords = []string{"each", "every", "all", "any", "no"}

// QuantifierScopeResolver locates quantifier triggers ("each", "every",
// "all", "any", "no") and attaches a Quantifier scope.Operator spanning the
// rest of the clause, reusing the same boundary algorithm
// NegationScopeResolver uses (spec.md §4.8). Like NegationScopeResolver it
// is a resolve.DocumentResolver: building the operator's DocSpans needs the
// line index, not just a per-line selection.
type QuantifierScopeResolver struct{}

func (QuantifierScopeResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	var out []spanindex.SemanticSpan
	tag := tagOf[confidence.ReviewableResult[scope.Operator[QuantifierOp]]]()

	for lineIdx, l := range doc.Lines() {
		for _, word := range quantifierWords {
			triggerPos, ok := findWord(l, word, 0)
			if !ok {
				continue
			}

			domain := scope.FindBoundary(l, triggerPos, lineIdx)
			trigger := docpos.MustNew(
				docpos.DocPosition{Line: lineIdx, Token: triggerPos},
				docpos.DocPosition{Line: lineIdx, Token: triggerPos + 1},
			)
			op := scope.New(scope.Quantifier, trigger, domain, QuantifierOp{Word: word})
			best := confidence.RuleBasedScore(op, 0.9, "quantifier-scope-resolver")

			var result confidence.ReviewableResult[scope.Operator[QuantifierOp]]
			if domain.IsAmbiguous() {
				result = confidence.UncertainFlagged(best, nil, confidence.FlagScope,
					"coordinating conjunction inside the quantifier's scope without a preceding comma")
			} else {
				result = confidence.Certain(best)
			}

			out = append(out, spanindex.SemanticSpan{Span: trigger, TypeTag: tag, Value: result})
		}
	}
	return out
}
