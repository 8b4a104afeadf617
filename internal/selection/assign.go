// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package selection

import "github.com/phosphorco/layered-nlp/internal/attrstore"

// CursorAssignment is the result of a resolver match, ready for the engine
// to drain into a Line's attribute store (spec.md §4.3, §4.4).
type CursorAssignment[T any] struct {
	Range        attrstore.LocalRange
	Value        T
	Associations []attrstore.AssociatedSpan
}

// AssignmentBuilder accumulates associations for a matched value before
// the resolver returns it to the engine.
type AssignmentBuilder[T any] struct {
	rng          attrstore.LocalRange
	value        T
	associations []attrstore.AssociatedSpan
}

// Assign starts a builder for value over the selection's range.
func Assign[T any](sel Selection, value T) *AssignmentBuilder[T] {
	return &AssignmentBuilder[T]{rng: sel.SpanRef(), value: value}
}

// AssignRange starts a builder for value over an explicit local range,
// for resolvers that compute a range rather than hold a Selection.
func AssignRange[T any](rng attrstore.LocalRange, value T) *AssignmentBuilder[T] {
	return &AssignmentBuilder[T]{rng: rng, value: value}
}

// WithAssociation attaches an already-built AssociatedSpan.
func (b *AssignmentBuilder[T]) WithAssociation(a attrstore.AssociatedSpan) *AssignmentBuilder[T] {
	b.associations = append(b.associations, a)
	return b
}

// WithAssociationFromSelection attaches a labeled association pointing at
// another selection's token range within the same line.
func (b *AssignmentBuilder[T]) WithAssociationFromSelection(label string, target Selection) *AssignmentBuilder[T] {
	return b.WithAssociation(attrstore.NewAssociation(label, attrstore.LocalRef(target.Start, target.End)))
}

// Build finalizes the CursorAssignment.
func (b *AssignmentBuilder[T]) Build() CursorAssignment[T] {
	return CursorAssignment[T]{Range: b.rng, Value: b.value, Associations: b.associations}
}
