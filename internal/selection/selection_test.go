// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package selection_test

import (
	"testing"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/token"
)

func TestSelectionOfAndSub(t *testing.T) {
	l := token.NewLine("the quick fox")
	all := selection.Of(l)
	if all.Len() != l.Len() {
		t.Fatalf("expected Of to span the whole line, got len %d want %d", all.Len(), l.Len())
	}
	if all.Text() != "the quick fox" {
		t.Errorf("expected reconstructed text to match original, got %q", all.Text())
	}

	sub := all.Sub(0, 1)
	if sub.Text() != "the" {
		t.Errorf("expected sub-selection text %q, got %q", "the", sub.Text())
	}
}

func TestSelectionAfterBefore(t *testing.T) {
	l := token.NewLine("a b c")
	all := selection.Of(l)
	b := all.Sub(2, 3)
	if got := all.Before(b).Text(); got != "a " {
		t.Errorf("Before: got %q", got)
	}
	if got := all.After(b).Text(); got != " c" {
		t.Errorf("After: got %q", got)
	}
}

func TestMatchFirstForwardsAndBackwards(t *testing.T) {
	l := token.NewLine("one two three two")
	all := selection.Of(l)
	m := selection.Literal("two")

	fwd, ok := selection.MatchFirstForwards(all, m)
	if !ok || fwd.Selection.Text() != "two" || fwd.Selection.Start != 2 {
		t.Fatalf("MatchFirstForwards: got %+v ok=%v", fwd, ok)
	}

	bwd, ok := selection.MatchFirstBackwards(all, m)
	if !ok || bwd.Selection.Start <= fwd.Selection.Start {
		t.Fatalf("MatchFirstBackwards: expected a later match than forwards, got %+v", bwd)
	}
}

func TestFindByReturnsAllNonOverlapping(t *testing.T) {
	l := token.NewLine("cat dog cat bird cat")
	matches := selection.FindBy(selection.Of(l), selection.Literal("cat"))
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d: %+v", len(matches), matches)
	}
}

func TestSeqSkipsWhitespaceByDefault(t *testing.T) {
	l := token.NewLine("shall not")
	seq := selection.Seq(selection.Literal("shall"), selection.Literal("not"))
	m, consumed, ok := seq(l, 0)
	if !ok {
		t.Fatalf("expected seq to match across whitespace")
	}
	if m.First != "shall" || m.Second != "not" {
		t.Errorf("unexpected pair: %+v", m)
	}
	if consumed != l.Len() {
		t.Errorf("expected seq to consume the whole line including whitespace, got %d want %d", consumed, l.Len())
	}
}

func TestSeqExplicitRequiresAdjacentTokens(t *testing.T) {
	l := token.NewLine("shall not")
	seq := selection.SeqExplicit(selection.Literal("shall"), selection.Literal("not"))
	if _, _, ok := seq(l, 0); ok {
		t.Errorf("expected SeqExplicit to fail without an explicit whitespace stage")
	}
}

func TestOrTriesAlternativesInOrder(t *testing.T) {
	l := token.NewLine("shall")
	m := selection.Or(selection.Literal("must"), selection.Literal("shall"), selection.Literal("shall"))
	v, _, ok := m(l, 0)
	if !ok || v != "shall" {
		t.Fatalf("expected Or to find the matching alternative, got %q ok=%v", v, ok)
	}
}

func TestOptAlwaysSucceeds(t *testing.T) {
	l := token.NewLine("shall")
	m := selection.Opt(selection.Literal("not"))
	opt, consumed, ok := m(l, 0)
	if !ok {
		t.Fatalf("Opt must always succeed")
	}
	if opt.Present || consumed != 0 {
		t.Errorf("expected absent optional with zero consumption, got %+v consumed=%d", opt, consumed)
	}
}

func TestAttrMatchesAnchoredAttribute(t *testing.T) {
	l := token.NewLine("Lessee shall pay")
	attrstore.Insert[string](l.Store, attrstore.LocalRange{Start: 0, End: 1}, "defined-term")

	m := selection.Attr[string]()
	v, consumed, ok := m(l, 0)
	if !ok || v != "defined-term" || consumed != 1 {
		t.Fatalf("expected anchored attribute match, got v=%q consumed=%d ok=%v", v, consumed, ok)
	}
	if _, _, ok := m(l, 1); ok {
		t.Errorf("expected no match at a position with no anchored attribute")
	}
}

func TestAttrEqFiltersByValue(t *testing.T) {
	l := token.NewLine("Lessee shall pay")
	attrstore.Insert[string](l.Store, attrstore.LocalRange{Start: 0, End: 1}, "defined-term")

	if _, _, ok := selection.AttrEq("other")(l, 0); ok {
		t.Errorf("expected AttrEq to reject a non-matching value")
	}
	if _, _, ok := selection.AttrEq("defined-term")(l, 0); !ok {
		t.Errorf("expected AttrEq to accept the matching value")
	}
}

func TestAssignmentBuilderBuildsCursorAssignment(t *testing.T) {
	l := token.NewLine("Lessee shall pay Rent")
	all := selection.Of(l)
	subject, _ := selection.MatchFirstForwards(all, selection.Literal("Lessee"))
	verb, _ := selection.MatchFirstForwards(all, selection.Literal("shall"))

	assignment := selection.Assign(subject.Selection, "obligor").
		WithAssociationFromSelection("modal", verb.Selection).
		Build()

	if assignment.Value != "obligor" {
		t.Errorf("expected value %q, got %q", "obligor", assignment.Value)
	}
	if assignment.Range.Start != 0 || assignment.Range.End != 1 {
		t.Errorf("expected range [0,1), got %+v", assignment.Range)
	}
	if len(assignment.Associations) != 1 || assignment.Associations[0].Label != "modal" {
		t.Fatalf("expected one modal association, got %+v", assignment.Associations)
	}

	attrstore.InsertWithAssociations[string](l.Store, assignment.Range, assignment.Value, assignment.Associations)
	got := attrstore.GetWithAssociations[string](l.Store)
	if len(got) != 1 || got[0].Value != "obligor" {
		t.Fatalf("expected the assignment to drain cleanly into the store, got %+v", got)
	}
}

func TestTokenKindMatchesWhitespace(t *testing.T) {
	l := token.NewLine("a b")
	m := selection.WhitespaceMatcher()
	_, consumed, ok := m(l, 1)
	if !ok || consumed != 1 {
		t.Fatalf("expected whitespace match at position 1, got consumed=%d ok=%v", consumed, ok)
	}
}

func TestLiteralIsCaseInsensitive(t *testing.T) {
	l := token.NewLine("SHALL")
	if _, _, ok := selection.Literal("shall")(l, 0); !ok {
		t.Errorf("expected Literal to match case-insensitively")
	}
}
