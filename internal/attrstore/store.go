// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package attrstore

import (
	"fmt"
	"reflect"

	"github.com/phosphorco/layered-nlp/cerrs"
)

// TypeTag is the opaque type-identity attribute values are keyed by. A
// language-neutral realization of this would be a registry mapping a
// stable string/integer tag to serialization functions (spec.md §9); in Go
// reflect.Type already is that stable identity.
type TypeTag = reflect.Type

func tagOf[T any]() TypeTag {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// bucket holds one type's parallel value/association/range sequences.
// Kept as three parallel slices (rather than one slice-of-structs) to
// make the alignment invariant from spec.md §4.2 an explicit, checkable
// property instead of one the Go type system gives us for free.
type bucket struct {
	ranges       []LocalRange
	values       []any
	associations [][]AssociatedSpan
}

func (b *bucket) assertAligned(tag TypeTag) {
	if len(b.values) != len(b.associations) || len(b.values) != len(b.ranges) {
		panic(fmt.Errorf("%w: type=%s values=%d associations=%d ranges=%d",
			cerrs.ErrAlignmentViolation, tag, len(b.values), len(b.associations), len(b.ranges)))
	}
}

// Store is the per-line attribute bucket set (spec.md §4.2).
type Store struct {
	lineLen int
	buckets map[TypeTag]*bucket
}

// New creates an empty Store for a line of lineLen tokens. lineLen is used
// to validate line-local association targets at insertion.
func New(lineLen int) *Store {
	return &Store{lineLen: lineLen, buckets: make(map[TypeTag]*bucket)}
}

func (s *Store) bucketFor(tag TypeTag) *bucket {
	b, ok := s.buckets[tag]
	if !ok {
		b = &bucket{}
		s.buckets[tag] = b
	}
	return b
}

func (s *Store) validateTarget(ref SpanRef) error {
	if ref.Local == nil && ref.Doc == nil {
		return fmt.Errorf("%w: empty SpanRef", cerrs.ErrAssociationOutOfRange)
	}
	if ref.Local != nil {
		l := ref.Local
		if l.Start < 0 || l.End < l.Start || l.End > s.lineLen {
			return fmt.Errorf("%w: local range [%d,%d) against line length %d",
				cerrs.ErrAssociationOutOfRange, l.Start, l.End, s.lineLen)
		}
	}
	return nil
}

// Insert pushes value into values[T] and an empty association list into
// associations[T] (spec.md §4.2).
func Insert[T any](s *Store, rng LocalRange, value T) {
	InsertWithAssociations(s, rng, value, nil)
}

// InsertWithAssociations is the other mutator: same as Insert, but the
// association list is assocs instead of empty. Every AssociatedSpan's
// target is validated before it is stored (spec.md invariant 2).
func InsertWithAssociations[T any](s *Store, rng LocalRange, value T, assocs []AssociatedSpan) {
	tag := tagOf[T]()
	for _, a := range assocs {
		if err := s.validateTarget(a.Target); err != nil {
			panic(err)
		}
	}
	if assocs == nil {
		assocs = []AssociatedSpan{}
	}
	b := s.bucketFor(tag)
	b.ranges = append(b.ranges, rng)
	b.values = append(b.values, value)
	b.associations = append(b.associations, assocs)
	b.assertAligned(tag)
}

// Get returns the values of type T in insertion order. A type never
// inserted yields an empty slice, never an error (spec.md §4.2).
func Get[T any](s *Store) []T {
	tag := tagOf[T]()
	b, ok := s.buckets[tag]
	if !ok {
		return nil
	}
	out := make([]T, len(b.values))
	for i, v := range b.values {
		out[i] = v.(T)
	}
	return out
}

// ValueAssoc pairs a value with its provenance associations.
type ValueAssoc[T any] struct {
	Value        T
	Associations []AssociatedSpan
}

// GetWithAssociations returns each value of type T alongside its aligned
// association list, in insertion order.
func GetWithAssociations[T any](s *Store) []ValueAssoc[T] {
	tag := tagOf[T]()
	b, ok := s.buckets[tag]
	if !ok {
		return nil
	}
	out := make([]ValueAssoc[T], len(b.values))
	for i, v := range b.values {
		out[i] = ValueAssoc[T]{Value: v.(T), Associations: b.associations[i]}
	}
	return out
}

// RangedValue pairs a value with the range it was inserted at.
type RangedValue[T any] struct {
	Range LocalRange
	Value T
}

// Find returns every (range, value) pair of type T, in insertion order.
// Callers that need positional order sort explicitly (spec.md §4.2).
func Find[T any](s *Store) []RangedValue[T] {
	tag := tagOf[T]()
	b, ok := s.buckets[tag]
	if !ok {
		return nil
	}
	out := make([]RangedValue[T], len(b.values))
	for i, v := range b.values {
		out[i] = RangedValue[T]{Range: b.ranges[i], Value: v.(T)}
	}
	return out
}

// RawEntry is the type-erased form of a stored value, for callers (the
// snapshot package) that walk every registered type without knowing T at
// compile time.
type RawEntry struct {
	Range        LocalRange
	Value        any
	Associations []AssociatedSpan
}

// Raw returns every entry stored under tag, type-erased, in insertion
// order. A tag never inserted yields nil (spec.md §4.10 traversal).
func (s *Store) Raw(tag TypeTag) []RawEntry {
	b, ok := s.buckets[tag]
	if !ok {
		return nil
	}
	out := make([]RawEntry, len(b.values))
	for i, v := range b.values {
		out[i] = RawEntry{Range: b.ranges[i], Value: v, Associations: b.associations[i]}
	}
	return out
}

// Types returns every TypeTag with at least one value, useful for
// traversal during snapshot ID assignment (spec.md §4.10).
func (s *Store) Types() []TypeTag {
	out := make([]TypeTag, 0, len(s.buckets))
	for t := range s.buckets {
		out = append(out, t)
	}
	return out
}

// Len returns the number of values of type T stored.
func Len[T any](s *Store) int {
	tag := tagOf[T]()
	b, ok := s.buckets[tag]
	if !ok {
		return 0
	}
	return len(b.values)
}
