// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolvers

import (
	"strings"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

// LinkedObligationResolver combines each line's ObligationPhrase with any
// PronounChain resolved for its obligor, producing a document-level
// LinkedObligation whose obligor is resolved through the chain when the
// phrase named only a pronoun (spec.md §8 S3, §9 design notes). It must run
// after both ObligationPhraseResolver and DocumentPronounResolver.
type LinkedObligationResolver struct {
	// Floor overrides confidence.Floor for this resolver's composition, the
	// policy knob spec.md §9 calls out as caller-configurable. Zero means
	// "use confidence.Floor".
	Floor float64
}

func (r LinkedObligationResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	floor := r.Floor
	if floor == 0 {
		floor = confidence.Floor
	}

	var out []spanindex.SemanticSpan
	tag := tagOf[confidence.ReviewableResult[LinkedObligation]]()

	for lineIdx, l := range doc.Lines() {
		for _, rv := range attrstore.Find[confidence.ReviewableResult[ObligationPhrase]](l.Store) {
			phrase := rv.Value.Ambiguous.Best.Value
			resolvedObligor := phrase.Obligor
			confidences := []float64{rv.Value.Ambiguous.Best.Confidence}

			if chain, chainConf, ok := findPronounChain(doc, lineIdx, phrase.Obligor); ok {
				resolvedObligor = chain.Antecedent
				confidences = append(confidences, chainConf)
			}

			linked := LinkedObligation{ObligationPhrase: phrase, ObligorResolved: resolvedObligor}
			composed := confidence.ComposeWithFloor(confidences, floor)
			scored := confidence.DerivedScore(linked, composed,
				"obligation-phrase-resolver", "document-pronoun-resolver")

			var result confidence.ReviewableResult[LinkedObligation]
			if rv.Value.NeedsReview {
				result = confidence.Uncertain(scored, nil, rv.Value.ReviewReason)
			} else {
				result = confidence.Certain(scored)
			}

			span := docpos.MustNew(
				docpos.DocPosition{Line: lineIdx, Token: rv.Range.Start},
				docpos.DocPosition{Line: lineIdx, Token: rv.Range.End},
			)
			out = append(out, spanindex.SemanticSpan{Span: span, TypeTag: tag, Value: result})
		}
	}
	return out
}

// findPronounChain looks up a PronounChain resolved on lineIdx whose
// pronoun text matches pronounText case-insensitively.
func findPronounChain(doc resolve.DocumentView, lineIdx int, pronounText string) (PronounChain, float64, bool) {
	tag := tagOf[confidence.Scored[PronounChain]]()
	for _, sp := range doc.SpanIndex().ByTag(tag) {
		if sp.Span.Start.Line != lineIdx {
			continue
		}
		scored, ok := sp.Value.(confidence.Scored[PronounChain])
		if !ok || !strings.EqualFold(scored.Value.Pronoun, pronounText) {
			continue
		}
		return scored.Value, scored.Confidence, true
	}
	return PronounChain{}, 0, false
}
