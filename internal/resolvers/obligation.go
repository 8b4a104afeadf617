// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// ObligationPhraseResolver finds a "<subject> shall [not] <action>" clause
// and, when the modal is followed by "be <participle> by <agent>", the
// passive-voice variant (spec.md §8 S1, S2, S4). Only the first "shall" in
// the line is considered — a reference implementation, not a full parser.
type ObligationPhraseResolver struct{}

func (ObligationPhraseResolver) Go(sel selection.Selection) []selection.CursorAssignment[confidence.ReviewableResult[ObligationPhrase]] {
	l := sel.Line
	shallPos, ok := findWord(l, "shall", sel.Start)
	if !ok || shallPos >= sel.End {
		return nil
	}

	obligorPos, ok := precedingWord(l, shallPos)
	if !ok {
		return nil
	}
	obligorSel := sel.Sub(obligorPos, obligorPos+1)

	cursor := skipWhitespace(l, shallPos+1)
	obligationType := Duty
	if cursor < l.Len() && strings.EqualFold(l.Tokens[cursor].Text, "not") {
		obligationType = Prohibition
		cursor = skipWhitespace(l, cursor+1)
	}

	if cursor < l.Len() && strings.EqualFold(l.Tokens[cursor].Text, "be") {
		if a := passiveObligation(sel, obligationType, cursor); a != nil {
			return a
		}
	}

	end := sentenceEnd(l, cursor)
	actionSel := sel.Sub(cursor, end)
	phrase := ObligationPhrase{
		Type:    obligationType,
		Obligor: obligorSel.Text(),
		Action:  actionSel.Text(),
	}
	scored := confidence.RuleBasedScore(phrase, 0.9, "obligation-phrase-resolver")
	result := confidence.Certain(scored)

	assignment := selection.Assign(sel.Sub(obligorPos, end), result).
		WithAssociationFromSelection("obligor_source", obligorSel).
		WithAssociationFromSelection("action_source", actionSel).
		Build()
	return []selection.CursorAssignment[confidence.ReviewableResult[ObligationPhrase]]{assignment}
}

// passiveObligation matches "be <participle> by [article] <agent>" starting
// at bePos, returning nil if the tail doesn't fit the pattern (spec.md §8
// S4: obligor resolved from the by-phrase, beneficiary left unset, lower
// confidence, flagged for review).
func passiveObligation(sel selection.Selection, obligationType ObligationType, bePos int) []selection.CursorAssignment[confidence.ReviewableResult[ObligationPhrase]] {
	l := sel.Line

	participlePos := skipWhitespace(l, bePos+1)
	if participlePos >= l.Len() || l.Tokens[participlePos].Kind != token.Word {
		return nil
	}

	byPos := skipWhitespace(l, participlePos+1)
	if byPos >= l.Len() || !strings.EqualFold(l.Tokens[byPos].Text, "by") {
		return nil
	}

	agentPos := skipWhitespace(l, byPos+1)
	if agentPos < l.Len() && l.Tokens[agentPos].Kind == token.Word {
		switch strings.ToLower(l.Tokens[agentPos].Text) {
		case "the", "a", "an":
			agentPos = skipWhitespace(l, agentPos+1)
		}
	}
	if agentPos >= l.Len() || l.Tokens[agentPos].Kind != token.Word {
		return nil
	}
	agentSel := sel.Sub(agentPos, agentPos+1)

	end := sentenceEnd(l, bePos)
	actionSel := sel.Sub(bePos, participlePos+1)

	phrase := ObligationPhrase{
		Type:    obligationType,
		Obligor: agentSel.Text(),
		Action:  actionSel.Text(),
		Passive: true,
	}
	scored := confidence.RuleBasedScore(phrase, 0.6, "obligation-phrase-resolver")
	result := confidence.Uncertain(scored, nil,
		"obligor inferred from a by-phrase in a passive voice construction")

	assignment := selection.Assign(sel.Sub(bePos, end), result).
		WithAssociationFromSelection("obligor_source", agentSel).
		WithAssociationFromSelection("action_source", actionSel).
		Build()
	return []selection.CursorAssignment[confidence.ReviewableResult[ObligationPhrase]]{assignment}
}
