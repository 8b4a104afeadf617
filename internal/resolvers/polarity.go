// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/selection"
)

// PolarityTrackerResolver detects the "shall not fail to <verb>" double
// negation pattern: "not" negates, but "fail to" is itself a negative-
// polarity verb, so the two cancel back to a positive obligation (spec.md
// §8 S5). The clause is always flagged for review — double negation reads
// as confusing regardless of how confidently it was detected.
type PolarityTrackerResolver struct{}

func (PolarityTrackerResolver) Go(sel selection.Selection) []selection.CursorAssignment[confidence.ReviewableResult[PolarityRecord]] {
	l := sel.Line
	shallPos, ok := findWord(l, "shall", sel.Start)
	if !ok || shallPos >= sel.End {
		return nil
	}

	notPos := skipWhitespace(l, shallPos+1)
	if notPos >= l.Len() || !strings.EqualFold(l.Tokens[notPos].Text, "not") {
		return nil
	}

	failPos := skipWhitespace(l, notPos+1)
	if failPos >= l.Len() || !strings.EqualFold(l.Tokens[failPos].Text, "fail") {
		return nil
	}

	toPos := skipWhitespace(l, failPos+1)
	if toPos >= l.Len() || !strings.EqualFold(l.Tokens[toPos].Text, "to") {
		return nil
	}

	end := sentenceEnd(l, toPos)
	record := PolarityRecord{NegationCount: 2, Pattern: "ShallNotFailTo", Polarity: Positive}
	scored := confidence.RuleBasedScore(record, 0.8, "polarity-tracker")
	result := confidence.UncertainFlagged(scored, nil, confidence.FlagPolarityDoubleNegation,
		"double negation via the shall-not-fail-to pattern")

	assignment := selection.AssignRange(attrstore.LocalRange{Start: shallPos, End: end}, result).Build()
	return []selection.CursorAssignment[confidence.ReviewableResult[PolarityRecord]]{assignment}
}
