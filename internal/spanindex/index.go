// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package spanindex

import (
	"sort"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/docpos"
)

// Index is the append-only cross-line span store (spec.md §4.5). The zero
// value is not usable; construct with New.
type Index struct {
	spans       []SemanticSpan
	byStartLine map[int][]SpanId
	sortedLines []int
	byType      map[TypeTag][]SpanId
}

// New builds an empty Index.
func New() *Index {
	return &Index{
		byStartLine: make(map[int][]SpanId),
		byType:      make(map[TypeTag][]SpanId),
	}
}

// Insert appends a type-erased span. Most callers use InsertSpan, the
// generic convenience that builds the SemanticSpan for them.
func (idx *Index) Insert(span docpos.DocSpan, tag TypeTag, value any, assocs []attrstore.AssociatedSpan) SpanId {
	id := SpanId(len(idx.spans))
	if assocs == nil {
		assocs = []attrstore.AssociatedSpan{}
	}
	idx.spans = append(idx.spans, SemanticSpan{ID: id, Span: span, TypeTag: tag, Value: value, Associations: assocs})

	line := span.Start.Line
	if _, ok := idx.byStartLine[line]; !ok {
		pos := sort.SearchInts(idx.sortedLines, line)
		idx.sortedLines = append(idx.sortedLines, 0)
		copy(idx.sortedLines[pos+1:], idx.sortedLines[pos:])
		idx.sortedLines[pos] = line
	}
	idx.byStartLine[line] = append(idx.byStartLine[line], id)
	idx.byType[tag] = append(idx.byType[tag], id)
	return id
}

// InsertSpan is the generic convenience wrapping Insert for a typed value.
func InsertSpan[T any](idx *Index, span docpos.DocSpan, value T, assocs []attrstore.AssociatedSpan) SpanId {
	return idx.Insert(span, tagOf[T](), value, assocs)
}

// Get returns the span at id. Panics if id is out of range; callers only
// hold IDs returned by Insert/InsertSpan on this same index.
func (idx *Index) Get(id SpanId) SemanticSpan { return idx.spans[id] }

// Len returns the total number of spans inserted.
func (idx *Index) Len() int { return len(idx.spans) }

// QueryByType returns every SemanticSpan of type T, in insertion order
// (spec.md §4.5: O(k) in the number of T-typed spans).
func QueryByType[T any](idx *Index) []SemanticSpan {
	return idx.ByTag(tagOf[T]())
}

// ByTag is QueryByType's type-erased form, for callers (the snapshot
// package) that walk every registered type tag without knowing T at
// compile time.
func (idx *Index) ByTag(tag TypeTag) []SemanticSpan {
	ids := idx.byType[tag]
	out := make([]SemanticSpan, len(ids))
	for i, id := range ids {
		out[i] = idx.spans[id]
	}
	return out
}

// Types returns every TypeTag with at least one span, in no particular
// order; callers that need a deterministic traversal (spec.md §4.10) sort
// by their own registered prefix.
func (idx *Index) Types() []TypeTag {
	out := make([]TypeTag, 0, len(idx.byType))
	for t := range idx.byType {
		out = append(out, t)
	}
	return out
}

// QueryAt returns every span containing pos, by scanning start-line buckets
// with start <= pos.Line and filtering by full containment (spec.md §4.5).
func (idx *Index) QueryAt(pos docpos.DocPosition) []SemanticSpan {
	var out []SemanticSpan
	upper := sort.SearchInts(idx.sortedLines, pos.Line+1)
	for _, line := range idx.sortedLines[:upper] {
		for _, id := range idx.byStartLine[line] {
			sp := idx.spans[id]
			if sp.Span.ContainsPos(pos) {
				out = append(out, sp)
			}
		}
	}
	return out
}

// QueryOverlapping returns every span whose start line falls in
// [0, lineEnd] and whose end line is >= lineStart (spec.md §4.5).
func (idx *Index) QueryOverlapping(lineStart, lineEnd int) []SemanticSpan {
	var out []SemanticSpan
	upper := sort.SearchInts(idx.sortedLines, lineEnd+1)
	for _, line := range idx.sortedLines[:upper] {
		for _, id := range idx.byStartLine[line] {
			sp := idx.spans[id]
			if sp.Span.End.Line >= lineStart {
				out = append(out, sp)
			}
		}
	}
	return out
}

// Parents returns every span that fully contains child's span (spec.md
// §4.5: "linear filter using relation_to").
func (idx *Index) Parents(child SemanticSpan) []SemanticSpan {
	var out []SemanticSpan
	for _, sp := range idx.spans {
		if sp.ID == child.ID {
			continue
		}
		if sp.Span.RelationTo(child.Span) == docpos.Contains {
			out = append(out, sp)
		}
	}
	return out
}

// Children returns every span fully contained by parent's span.
func (idx *Index) Children(parent SemanticSpan) []SemanticSpan {
	var out []SemanticSpan
	for _, sp := range idx.spans {
		if sp.ID == parent.ID {
			continue
		}
		if sp.Span.RelationTo(parent.Span) == docpos.ContainedBy {
			out = append(out, sp)
		}
	}
	return out
}

// BySmallestFirst sorts spans by (end - start) ascending, the "most
// specific first" query-time tie-break convention from spec.md §4.5. It is
// not an index property; callers apply it to query results as needed.
func BySmallestFirst(spans []SemanticSpan) {
	sort.SliceStable(spans, func(i, j int) bool {
		return spanWidth(spans[i].Span) < spanWidth(spans[j].Span)
	})
}

// spanWidth orders first by line span, then by token span within a line,
// matching spec.md §4.5's "(end.line, end.token) - (start.line, start.token)".
func spanWidth(s docpos.DocSpan) int {
	lineWidth := s.End.Line - s.Start.Line
	tokenWidth := s.End.Token - s.Start.Token
	return lineWidth*1_000_000 + tokenWidth
}
