// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package confidence

import (
	"fmt"
	"sort"
)

// AmbiguityFlag enumerates the phenomena the core knows it cannot resolve
// reliably (spec.md §4.7, §9 "review-first over auto-resolve").
type AmbiguityFlag int

const (
	FlagNone AmbiguityFlag = iota
	FlagScope
	FlagAntecedent
	FlagCoordination
	FlagPolarityDoubleNegation
	FlagModalNegationInteraction
	FlagExceptionScope
)

func (f AmbiguityFlag) String() string {
	switch f {
	case FlagNone:
		return ""
	case FlagScope:
		return "Scope"
	case FlagAntecedent:
		return "Antecedent"
	case FlagCoordination:
		return "Coordination"
	case FlagPolarityDoubleNegation:
		return "PolarityDoubleNegation"
	case FlagModalNegationInteraction:
		return "ModalNegationInteraction"
	case FlagExceptionScope:
		return "ExceptionScope"
	default:
		return fmt.Sprintf("AmbiguityFlag(%d)", int(f))
	}
}

// Ambiguous ranks a best interpretation against alternatives, sorted by
// confidence descending with a deterministic tie-break (spec.md §3, §4.7).
// detectionOrder carries the secondary sort key (the order alternatives
// were produced in, used only to break exact confidence ties).
type Ambiguous[T any] struct {
	Best           Scored[T]
	Alternatives   []Scored[T]
	Flag           AmbiguityFlag
	detectionOrder []int
}

// NewAmbiguous builds an Ambiguous value, sorting alternatives by
// confidence descending and recording their original detection order for
// tie-breaking.
func NewAmbiguous[T any](best Scored[T], alternatives []Scored[T], flag AmbiguityFlag) Ambiguous[T] {
	alts := make([]Scored[T], len(alternatives))
	copy(alts, alternatives)
	order := make([]int, len(alts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := alts[order[i]], alts[order[j]]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return order[i] < order[j]
	})
	sorted := make([]Scored[T], len(alts))
	for i, idx := range order {
		sorted[i] = alts[idx]
	}
	return Ambiguous[T]{Best: best, Alternatives: sorted, Flag: flag, detectionOrder: order}
}

// Single builds an unambiguous Ambiguous[T]: a best value with no
// alternatives and no flag.
func Single[T any](best Scored[T]) Ambiguous[T] {
	return NewAmbiguous(best, nil, FlagNone)
}

// IsAmbiguous reports whether a flag is attached or alternatives exist.
func (a Ambiguous[T]) IsAmbiguous() bool {
	return a.Flag != FlagNone || len(a.Alternatives) > 0
}
