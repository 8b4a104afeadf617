// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package scope

import (
	"fmt"

	"github.com/phosphorco/layered-nlp/internal/docpos"
)

// Dimension classifies what kind of scope an operator governs (spec.md §4.8).
type Dimension int

const (
	Negation Dimension = iota
	Quantifier
	Precedence
	Temporal
)

func (d Dimension) String() string {
	switch d {
	case Negation:
		return "Negation"
	case Quantifier:
		return "Quantifier"
	case Precedence:
		return "Precedence"
	case Temporal:
		return "Temporal"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// Domain is what a trigger operates on: a primary span, plus alternative
// candidates recorded when the boundary scan passed a coordinating
// conjunction with no comma before it (spec.md §4.8 rule 4).
type Domain struct {
	Primary      docpos.DocSpan
	Alternatives []docpos.DocSpan
}

// Operator unifies negation, quantifier, precedence, and temporal scope
// under one shape (spec.md §4.8).
type Operator[O any] struct {
	Dimension Dimension
	Trigger   docpos.DocSpan
	Domain    Domain
	Payload   O
}

// New builds an Operator with the given dimension, trigger span, domain,
// and payload.
func New[O any](dimension Dimension, trigger docpos.DocSpan, domain Domain, payload O) Operator[O] {
	return Operator[O]{Dimension: dimension, Trigger: trigger, Domain: domain, Payload: payload}
}

// IsAmbiguous reports whether the boundary scan recorded alternative
// domains (spec.md §4.8 rule 4).
func (d Domain) IsAmbiguous() bool { return len(d.Alternatives) > 0 }

// Interacts reports whether two operators' primary domains intersect or
// one contains the other (spec.md §4.8 "Scope interaction").
func Interacts[A, B any](a Operator[A], b Operator[B]) bool {
	rel := a.Domain.Primary.RelationTo(b.Domain.Primary)
	switch rel {
	case docpos.Overlaps, docpos.Contains, docpos.ContainedBy, docpos.Equal:
		return true
	default:
		return false
	}
}
