// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"log/slog"

	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/document"
	"github.com/phosphorco/layered-nlp/internal/scope"
	"github.com/phosphorco/layered-nlp/internal/snapshot"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

// Run drives every reference resolver over doc in the one order that
// satisfies their dependencies (spec.md §8): defined terms and pronouns
// before the document-level pronoun chain, which LinkedObligationResolver
// needs, and ObligationPhraseResolver before it too. TermReferenceResolver
// is built from the terms DefinedTermResolver attached, so it runs after
// it. ClauseLinkResolver, PolarityTrackerResolver, NegationScopeResolver,
// QuantifierScopeResolver, and ContractKeywordResolver have no
// cross-resolver dependencies and run alongside the rest. confidenceFloor configures
// LinkedObligationResolver's composition (spec.md §9's policy knob); pass
// 0 to use confidence.Floor.
func Run(doc *document.Document, confidenceFloor float64) error {
	steps := []func() error{
		func() error { return document.Run[ContractKeyword](doc, ContractKeywordResolver{}) },
		func() error { return document.Run[DefinedTerm](doc, DefinedTermResolver{}) },
		func() error {
			return document.Run[TermReference](doc, TermReferenceResolver{Terms: CollectDefinedTerms(doc)})
		},
		func() error { return document.Run[Pronoun](doc, PronounResolver{}) },
		func() error {
			return document.RunDocument[confidence.Scored[PronounChain]](doc, DocumentPronounResolver{})
		},
		func() error {
			return document.Run[confidence.ReviewableResult[ObligationPhrase]](doc, ObligationPhraseResolver{})
		},
		func() error {
			return document.RunDocument[confidence.ReviewableResult[LinkedObligation]](doc, LinkedObligationResolver{Floor: confidenceFloor})
		},
		func() error {
			return document.Run[confidence.ReviewableResult[PolarityRecord]](doc, PolarityTrackerResolver{})
		},
		func() error {
			return document.RunDocument[spanindex.Link[spanindex.Role]](doc, ClauseLinkResolver{})
		},
		func() error {
			return document.RunDocument[confidence.ReviewableResult[scope.Operator[NegationOp]]](doc, NegationScopeResolver{})
		},
		func() error {
			return document.RunDocument[confidence.ReviewableResult[scope.Operator[QuantifierOp]]](doc, QuantifierScopeResolver{})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	slog.Debug("resolver chain complete", "lines", doc.LineCount())
	return nil
}

// NewRegistry builds the snapshot prefix registry for every type the
// reference chain produces (spec.md §4.10 "short stable prefixes").
func NewRegistry() *snapshot.Registry {
	reg := snapshot.NewRegistry()
	snapshot.Register[ContractKeyword](reg, "kw")
	snapshot.Register[DefinedTerm](reg, "dt")
	snapshot.Register[TermReference](reg, "tr")
	snapshot.Register[Pronoun](reg, "pn")
	snapshot.Register[confidence.Scored[PronounChain]](reg, "pc")
	snapshot.Register[confidence.ReviewableResult[ObligationPhrase]](reg, "ob")
	snapshot.Register[confidence.ReviewableResult[LinkedObligation]](reg, "lo")
	snapshot.Register[confidence.ReviewableResult[PolarityRecord]](reg, "pl")
	snapshot.Register[spanindex.Link[spanindex.Role]](reg, "lk")
	snapshot.Register[confidence.ReviewableResult[scope.Operator[NegationOp]]](reg, "ns")
	snapshot.Register[confidence.ReviewableResult[scope.Operator[QuantifierOp]]](reg, "qs")
	return reg
}
