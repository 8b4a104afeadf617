// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package spanindex

import (
	"reflect"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/docpos"
)

// TypeTag is the same opaque type identity attrstore uses; spans and
// line-local attributes share one type-tag space (spec.md §4.6).
type TypeTag = attrstore.TypeTag

func tagOf[T any]() TypeTag {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SpanId identifies a SemanticSpan within a SpanIndex. IDs are assigned in
// insertion order starting at 0 and are never reused.
type SpanId int

// SemanticSpan is a type-erased, cross-line span (spec.md §4.5): a
// document position range, a value of some attribute type downcast by
// TypeTag, and its provenance associations.
type SemanticSpan struct {
	ID           SpanId
	Span         docpos.DocSpan
	TypeTag      TypeTag
	Value        any
	Associations []attrstore.AssociatedSpan
}
