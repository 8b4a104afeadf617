// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers_test

import (
	"strings"
	"testing"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/document"
	"github.com/phosphorco/layered-nlp/internal/resolvers"
	"github.com/phosphorco/layered-nlp/internal/scope"
	"github.com/phosphorco/layered-nlp/internal/snapshot"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

func newDoc(t *testing.T, text string) *document.Document {
	t.Helper()
	doc, err := document.New(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return doc
}

// S1: a simple affirmative duty.
func TestObligationPhraseSimpleDuty(t *testing.T) {
	doc := newDoc(t, "The Tenant shall pay rent monthly.")
	if err := document.Run[confidence.ReviewableResult[resolvers.ObligationPhrase]](doc, resolvers.ObligationPhraseResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[confidence.ReviewableResult[resolvers.ObligationPhrase]](line.Store)
	if len(found) != 1 {
		t.Fatalf("expected 1 obligation phrase, got %d", len(found))
	}
	phrase := found[0].Value.Ambiguous.Best.Value
	if phrase.Type != resolvers.Duty {
		t.Errorf("expected Duty, got %s", phrase.Type)
	}
	if phrase.Obligor != "Tenant" {
		t.Errorf("expected obligor Tenant, got %q", phrase.Obligor)
	}
	if !strings.Contains(phrase.Action, "pay") {
		t.Errorf("expected action to contain pay, got %q", phrase.Action)
	}
}

// S2: negation turns the obligation into a prohibition.
func TestObligationPhraseNegatedIsProhibition(t *testing.T) {
	doc := newDoc(t, "The Recipient shall not disclose Confidential Information.")
	if err := document.Run[confidence.ReviewableResult[resolvers.ObligationPhrase]](doc, resolvers.ObligationPhraseResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[confidence.ReviewableResult[resolvers.ObligationPhrase]](line.Store)
	if len(found) != 1 {
		t.Fatalf("expected 1 obligation phrase, got %d", len(found))
	}
	phrase := found[0].Value.Ambiguous.Best.Value
	if phrase.Type != resolvers.Prohibition {
		t.Errorf("expected Prohibition, got %s", phrase.Type)
	}
	if phrase.Obligor != "Recipient" {
		t.Errorf("expected obligor Recipient, got %q", phrase.Obligor)
	}
	if !strings.Contains(phrase.Action, "disclose") {
		t.Errorf("expected action to contain disclose, got %q", phrase.Action)
	}
}

// S3: a pronoun in a later line resolves to the defined term from an
// earlier line.
func TestLinkedObligationResolvesPronounToDefinedTerm(t *testing.T) {
	doc := newDoc(t, "Acme Corp (\"Company\") is party.\nIt shall deliver goods.")

	if err := document.Run[resolvers.DefinedTerm](doc, resolvers.DefinedTermResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.Run[resolvers.Pronoun](doc, resolvers.PronounResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.RunDocument[resolvers.PronounChain](doc, resolvers.DocumentPronounResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.Run[confidence.ReviewableResult[resolvers.ObligationPhrase]](doc, resolvers.ObligationPhraseResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.RunDocument[confidence.ReviewableResult[resolvers.LinkedObligation]](doc, resolvers.LinkedObligationResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	linked := spanindex.QueryByType[confidence.ReviewableResult[resolvers.LinkedObligation]](doc.SpanIndex())
	if len(linked) != 1 {
		t.Fatalf("expected 1 linked obligation, got %d", len(linked))
	}
	result := linked[0].Value.(confidence.ReviewableResult[resolvers.LinkedObligation])
	lo := result.Ambiguous.Best.Value
	if lo.ObligorResolved != "Company" {
		t.Errorf("expected obligor resolved to Company, got %q", lo.ObligorResolved)
	}
	if !strings.Contains(lo.Action, "deliver") {
		t.Errorf("expected action to contain deliver, got %q", lo.Action)
	}
}

// S4: passive voice resolves the obligor from the by-phrase, at lower
// confidence, and flags the result for review.
func TestObligationPhrasePassiveVoice(t *testing.T) {
	doc := newDoc(t, "Payment shall be made by the Buyer within 30 days.")
	if err := document.Run[confidence.ReviewableResult[resolvers.ObligationPhrase]](doc, resolvers.ObligationPhraseResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[confidence.ReviewableResult[resolvers.ObligationPhrase]](line.Store)
	if len(found) != 1 {
		t.Fatalf("expected 1 obligation phrase, got %d", len(found))
	}
	result := found[0].Value
	phrase := result.Ambiguous.Best.Value
	if !phrase.Passive {
		t.Error("expected passive voice to be detected")
	}
	if phrase.Obligor != "Buyer" {
		t.Errorf("expected obligor Buyer, got %q", phrase.Obligor)
	}
	if phrase.Beneficiary != "" {
		t.Errorf("expected no beneficiary, got %q", phrase.Beneficiary)
	}
	if !result.NeedsReview {
		t.Error("expected needs_review true for passive voice")
	}
	if !strings.Contains(result.ReviewReason, "passive") {
		t.Errorf("expected review reason to mention passive voice, got %q", result.ReviewReason)
	}
	active := confidence.RuleBasedScore(resolvers.ObligationPhrase{}, 0.9, "obligation-phrase-resolver")
	if result.Ambiguous.Best.Confidence >= active.Confidence {
		t.Errorf("expected passive confidence %v lower than active-voice 0.9", result.Ambiguous.Best.Confidence)
	}
}

// S5: double negation via "shall not fail to" cancels back to positive
// polarity but is still flagged for review.
func TestPolarityTrackerDoubleNegation(t *testing.T) {
	doc := newDoc(t, "The Company shall not fail to deliver.")
	if err := document.Run[confidence.ReviewableResult[resolvers.PolarityRecord]](doc, resolvers.PolarityTrackerResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[confidence.ReviewableResult[resolvers.PolarityRecord]](line.Store)
	if len(found) != 1 {
		t.Fatalf("expected 1 polarity record, got %d", len(found))
	}
	result := found[0].Value
	record := result.Ambiguous.Best.Value
	if record.NegationCount != 2 {
		t.Errorf("expected negation count 2, got %d", record.NegationCount)
	}
	if record.Polarity != resolvers.Positive {
		t.Errorf("expected Positive polarity, got %s", record.Polarity)
	}
	if !result.NeedsReview {
		t.Error("expected needs_review true")
	}
	if result.Ambiguous.Flag != confidence.FlagPolarityDoubleNegation {
		t.Errorf("expected FlagPolarityDoubleNegation, got %s", result.Ambiguous.Flag)
	}
}

// S6: a coordination list emits only adjacent-pair Conjunct links.
func TestClauseLinkChainNeverLinksFirstAndLastDirectly(t *testing.T) {
	doc := newDoc(t, "Party A, Party B, and Party C shall comply.")
	if err := document.RunDocument[spanindex.Link[spanindex.Role]](doc, resolvers.ClauseLinkResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	links := spanindex.QueryByType[spanindex.Link[spanindex.Role]](doc.SpanIndex())
	if len(links) != 4 {
		t.Fatalf("expected 4 link spans (A->B, B->A, B->C, C->B), got %d", len(links))
	}
	line, _ := doc.Line(0)
	for _, sp := range links {
		link := sp.Value.(spanindex.Link[spanindex.Role])
		anchorText := line.TokenText(link.Anchor.Start.Token, link.Anchor.End.Token)
		targetText := line.TokenText(link.Target.Start.Token, link.Target.End.Token)
		if strings.Contains(anchorText, "A") && strings.Contains(targetText, "C") {
			t.Errorf("found a direct A<->C link, chain must only link adjacent members")
		}
		if strings.Contains(anchorText, "C") && strings.Contains(targetText, "A") {
			t.Errorf("found a direct C<->A link, chain must only link adjacent members")
		}
	}
}

// ContractKeywordResolver tags every modal verb and nothing else.
func TestContractKeywordResolverTagsModals(t *testing.T) {
	doc := newDoc(t, "The Tenant shall pay rent and may renew.")
	if err := document.Run[resolvers.ContractKeyword](doc, resolvers.ContractKeywordResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[resolvers.ContractKeyword](line.Store)
	if len(found) != 2 {
		t.Fatalf("expected 2 modal keywords (shall, may), got %d: %+v", len(found), found)
	}
	if found[0].Value.Text != "shall" || found[1].Value.Text != "may" {
		t.Errorf("expected shall then may in document order, got %q then %q", found[0].Value.Text, found[1].Value.Text)
	}
}

// TermReferenceResolver tags a later bare occurrence of a defined term but
// not the defining occurrence itself.
func TestTermReferenceResolverSkipsDefiningOccurrence(t *testing.T) {
	doc := newDoc(t, `Acme Corp ("Company") shall pay Company taxes.`)
	if err := document.Run[resolvers.DefinedTerm](doc, resolvers.DefinedTermResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	terms := resolvers.CollectDefinedTerms(doc)
	if !terms["Company"] {
		t.Fatalf("expected Company to be collected as a defined term, got %+v", terms)
	}
	if err := document.Run[resolvers.TermReference](doc, resolvers.TermReferenceResolver{Terms: terms}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _ := doc.Line(0)
	found := attrstore.Find[resolvers.TermReference](line.Store)
	if len(found) != 1 {
		t.Fatalf("expected 1 term reference (the bare Company after the definition), got %d", len(found))
	}
	if found[0].Value.Term != "Company" {
		t.Errorf("expected term reference Company, got %q", found[0].Value.Term)
	}
}

// The full pipeline, run in its documented order, produces a snapshot with
// every registered prefix it is supposed to.
func TestPipelineRunProducesSnapshottableResults(t *testing.T) {
	doc := newDoc(t, "Acme Corp (\"Company\") is party.\nIt shall not fail to deliver goods.")
	if err := resolvers.Run(doc, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := resolvers.NewRegistry()
	snap, err := snapshot.Build(doc, reg, false)
	if err != nil {
		t.Fatalf("unexpected error building snapshot: %v", err)
	}
	if len(snap.TextLines) != 2 {
		t.Fatalf("expected 2 text lines, got %d", len(snap.TextLines))
	}
	for _, prefix := range []string{"kw", "dt", "pn", "pc", "ob", "lo", "pl"} {
		if len(snap.Spans[prefix]) == 0 {
			t.Errorf("expected at least one span under prefix %q, got none; snapshot: %+v", prefix, snap.Spans)
		}
	}
}

// S7: a coordinating conjunction without a preceding comma inside a
// negation's scope records a narrower alternative domain.
func TestNegationScopeRecordsAlternativeOnMidClauseConjunction(t *testing.T) {
	doc := newDoc(t, "The Buyer shall not reject widgets and gadgets.")
	if err := document.RunDocument[confidence.ReviewableResult[scope.Operator[resolvers.NegationOp]]](doc, resolvers.NegationScopeResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := spanindex.QueryByType[confidence.ReviewableResult[scope.Operator[resolvers.NegationOp]]](doc.SpanIndex())
	if len(spans) != 1 {
		t.Fatalf("expected 1 negation operator, got %d", len(spans))
	}
	result := spans[0].Value.(confidence.ReviewableResult[scope.Operator[resolvers.NegationOp]])
	op := result.Ambiguous.Best.Value
	if !op.Domain.IsAmbiguous() {
		t.Fatal("expected the negation's domain to be ambiguous")
	}
	line, _ := doc.Line(0)
	primaryText := line.TokenText(op.Domain.Primary.Start.Token, op.Domain.Primary.End.Token)
	if !strings.Contains(primaryText, "and gadgets") {
		t.Errorf("expected primary domain to extend through the conjunction, got %q", primaryText)
	}
	altText := line.TokenText(op.Domain.Alternatives[0].Start.Token, op.Domain.Alternatives[0].End.Token)
	if strings.Contains(altText, "and") {
		t.Errorf("expected alternative domain to stop before the conjunction, got %q", altText)
	}
	if !result.NeedsReview {
		t.Error("expected needs_review true for an ambiguous scope")
	}
}

func TestQuantifierScopeResolverTagsEachTrigger(t *testing.T) {
	doc := newDoc(t, "Each Party shall notify the other in writing.")
	if err := document.RunDocument[confidence.ReviewableResult[scope.Operator[resolvers.QuantifierOp]]](doc, resolvers.QuantifierScopeResolver{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := spanindex.QueryByType[confidence.ReviewableResult[scope.Operator[resolvers.QuantifierOp]]](doc.SpanIndex())
	if len(spans) != 1 {
		t.Fatalf("expected 1 quantifier operator, got %d", len(spans))
	}
	result := spans[0].Value.(confidence.ReviewableResult[scope.Operator[resolvers.QuantifierOp]])
	op := result.Ambiguous.Best.Value
	if op.Payload.Word != "each" {
		t.Errorf("expected trigger word %q, got %q", "each", op.Payload.Word)
	}
	line, _ := doc.Line(0)
	primaryText := line.TokenText(op.Domain.Primary.Start.Token, op.Domain.Primary.End.Token)
	if !strings.Contains(primaryText, "Party") {
		t.Errorf("expected domain to cover the quantified noun phrase, got %q", primaryText)
	}
}
