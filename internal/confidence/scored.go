// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package confidence

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// SourceKind discriminates the tagged union Source (spec.md §3).
type SourceKind int

const (
	SourceRuleBased SourceKind = iota
	SourceLLM
	SourceDerived
	SourceManual
)

func (k SourceKind) String() string {
	switch k {
	case SourceRuleBased:
		return "RuleBased"
	case SourceLLM:
		return "LLM"
	case SourceDerived:
		return "Derived"
	case SourceManual:
		return "Manual"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Source records provenance for a Scored value. Exactly the fields that
// apply to Kind are populated. LLM pass/verifier identifiers are
// uuid.UUIDs — the "LLM identifiers" the snapshot redaction hook
// (spec.md §6) replaces with "<redacted>".
type Source struct {
	Kind SourceKind

	// RuleBased
	RuleName string

	// LLM
	PassID     uuid.UUID
	VerifierID uuid.UUID

	// Derived
	Parents []string
}

// RuleBased builds a Source for a deterministic rule-based resolver.
func RuleBased(name string) Source {
	return Source{Kind: SourceRuleBased, RuleName: name}
}

// LLM builds a Source for a value produced by an LLM pass and (optionally)
// cross-checked by a verifier pass. Both identifiers are supplied by the
// caller; LLM does not generate them.
func LLM(passID, verifierID uuid.UUID) Source {
	return Source{Kind: SourceLLM, PassID: passID, VerifierID: verifierID}
}

// Derived builds a Source for a value computed from other spans rather
// than observed directly.
func Derived(parentIDs ...string) Source {
	return Source{Kind: SourceDerived, Parents: parentIDs}
}

// Manual builds a Source for a human-entered override.
func Manual() Source {
	return Source{Kind: SourceManual}
}

// MarshalJSON implements a tagged-union encoding, matching the teacher's
// enum + explicit map convention for discriminated values.
func (s Source) MarshalJSON() ([]byte, error) {
	m := map[string]any{"kind": s.Kind.String()}
	switch s.Kind {
	case SourceRuleBased:
		m["name"] = s.RuleName
	case SourceLLM:
		m["pass_id"] = s.PassID.String()
		m["verifier_id"] = s.VerifierID.String()
	case SourceDerived:
		m["parents"] = s.Parents
	case SourceManual:
		// no extra fields
	}
	return json.Marshal(m)
}

// Scored is a value with a confidence in [0,1] and its Source (spec.md §3).
type Scored[T any] struct {
	Value      T
	Confidence float64
	Source     Source
}

// RuleBasedScore builds a Scored value from a deterministic rule.
func RuleBasedScore[T any](v T, confidence float64, ruleName string) Scored[T] {
	return Scored[T]{Value: v, Confidence: clamp01(confidence), Source: RuleBased(ruleName)}
}

// LLMScore builds a Scored value from an LLM pass.
func LLMScore[T any](v T, confidence float64, passID, verifierID uuid.UUID) Scored[T] {
	return Scored[T]{Value: v, Confidence: clamp01(confidence), Source: LLM(passID, verifierID)}
}

// DerivedScore builds a Scored value computed from other spans.
func DerivedScore[T any](v T, confidence float64, parentIDs ...string) Scored[T] {
	return Scored[T]{Value: v, Confidence: clamp01(confidence), Source: Derived(parentIDs...)}
}

// SnapshotConfidence lets the snapshot package extract a Scored value's
// confidence and source without knowing T at compile time (spec.md §6
// SpanData.confidence/source).
func (s Scored[T]) SnapshotConfidence() (float64, Source) { return s.Confidence, s.Source }

func clamp01(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// Floor is the default lower bound compose_confidence never drops below
// (spec.md §4.7, §8). Callers that need a different policy floor should
// use ComposeWithFloor.
const Floor = 0.1

// Compose implements compose_confidence([]) with the spec's default
// floor: the product of all confidences, floored at Floor. An empty
// input composes to Floor (spec.md §8).
func Compose(scores []float64) float64 {
	return ComposeWithFloor(scores, Floor)
}

// ComposeWithFloor is Compose parameterized on the policy floor
// (spec.md §9: "the exact confidence floor ... is a policy knob").
func ComposeWithFloor(scores []float64, floor float64) float64 {
	if len(scores) == 0 {
		return floor
	}
	product := 1.0
	for _, c := range scores {
		product *= c
	}
	if product < floor {
		return floor
	}
	return product
}
