// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package document

import (
	"fmt"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

// SpanSource classifies which half of QueryAll's merged view a value came
// from (spec.md §4.9).
type SpanSource int

const (
	SourceLine SpanSource = iota
	SourceDocument
)

func (s SpanSource) String() string {
	if s == SourceLine {
		return "Line"
	}
	return "Document"
}

// UnifiedSpan pairs a value of type T with the DocSpan it came from and
// which half of the document produced it.
type UnifiedSpan[T any] struct {
	Span   docpos.DocSpan
	Value  T
	Source SpanSource
}

// QueryLine returns every value of type T attached anywhere on line
// lineIdx, in insertion order (spec.md §4.9 "query_line<T>(line_idx)").
func QueryLine[T any](d *Document, lineIdx int) ([]T, error) {
	l, err := d.Line(lineIdx)
	if err != nil {
		return nil, err
	}
	return attrstore.Get[T](l.Store), nil
}

// QueryDoc returns every document-level span of type T, in insertion
// order (spec.md §4.9 "query_doc<T>()").
func QueryDoc[T any](d *Document) []spanindex.SemanticSpan {
	return spanindex.QueryByType[T](d.index)
}

// QueryAll merges line-local and document-level values of type T into one
// view, each annotated with its SpanSource (spec.md §4.9
// "query_all<T>() -> [UnifiedSpan<T>]"). Line-local values are converted
// to DocSpans anchored on their own line; callers that need a stable
// cross-kind order sort the result by position explicitly (spec.md §5
// ordering guarantees: resolver-produced order is preserved otherwise).
func QueryAll[T any](d *Document) ([]UnifiedSpan[T], error) {
	var out []UnifiedSpan[T]
	for lineIdx, l := range d.lines {
		for _, rv := range attrstore.Find[T](l.Store) {
			span, err := docpos.SingleLine(lineIdx, rv.Range.Start, rv.Range.End)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineIdx, err)
			}
			out = append(out, UnifiedSpan[T]{Span: span, Value: rv.Value, Source: SourceLine})
		}
	}
	for _, sp := range QueryDoc[T](d) {
		out = append(out, UnifiedSpan[T]{Span: sp.Span, Value: sp.Value.(T), Source: SourceDocument})
	}
	return out, nil
}
