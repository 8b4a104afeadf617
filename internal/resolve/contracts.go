// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolve

import (
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// Resolver is a line-level resolver producing attribute values of type T
// (spec.md §4.4). Go must be a pure function of the selection and the
// attributes already present on the line: it must not mutate an existing
// attribute, only append new ones via the returned assignments.
type Resolver[T any] interface {
	Go(sel selection.Selection) []selection.CursorAssignment[T]
}

// ResolverFunc adapts a plain function to Resolver, the way http.HandlerFunc
// adapts a function to http.Handler.
type ResolverFunc[T any] func(sel selection.Selection) []selection.CursorAssignment[T]

func (f ResolverFunc[T]) Go(sel selection.Selection) []selection.CursorAssignment[T] { return f(sel) }

// DocumentView is the minimal read surface a DocumentResolver needs. The
// document package's Document satisfies it; resolve does not import
// document to avoid a cycle (document.Run/RunDocument import resolve).
type DocumentView interface {
	Lines() []*token.Line
	SpanIndex() *spanindex.Index
}

// DocumentResolver is a document-level resolver producing cross-line spans
// of type T (spec.md §4.4).
type DocumentResolver[T any] interface {
	Resolve(doc DocumentView) []spanindex.SemanticSpan
}

// RequiresDeclarer is an optional interface a Resolver or DocumentResolver
// may implement to advertise a dependency on line-level attribute types
// already being present. It is advisory only: the engine performs no
// topological sort, and ordering is enforced entirely by the caller's
// chosen .Run(...).Run(...) sequence (spec.md §4.4).
type RequiresDeclarer interface {
	Requires() []attrstore.TypeTag
}
