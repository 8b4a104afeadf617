// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package attrstore

import "github.com/phosphorco/layered-nlp/internal/docpos"

// LocalRange is a [Start, End) token-index range within a single line.
type LocalRange struct {
	Start int
	End   int
}

// Len returns the number of tokens the range spans.
func (r LocalRange) Len() int { return r.End - r.Start }

// SpanRef is either a line-local range or a document-level DocSpan
// (spec.md §3 AssociatedSpan). Exactly one of Local/Doc is set.
type SpanRef struct {
	Local *LocalRange
	Doc   *docpos.DocSpan
}

// LocalRef builds a line-local SpanRef.
func LocalRef(start, end int) SpanRef {
	r := LocalRange{Start: start, End: end}
	return SpanRef{Local: &r}
}

// DocRef builds a document-level SpanRef.
func DocRef(span docpos.DocSpan) SpanRef {
	return SpanRef{Doc: &span}
}

// IsLocal reports whether the ref targets a line-local range.
func (s SpanRef) IsLocal() bool { return s.Local != nil }

// AssociatedSpan is a directed, labeled provenance edge from an attribute
// value (or a SemanticSpan) to the span that justifies it (spec.md §3).
type AssociatedSpan struct {
	Label  string
	Glyph  *string
	Target SpanRef
}

// NewAssociation builds an AssociatedSpan with no glyph.
func NewAssociation(label string, target SpanRef) AssociatedSpan {
	return AssociatedSpan{Label: label, Target: target}
}

// WithGlyph returns a copy of the association carrying a display glyph.
func (a AssociatedSpan) WithGlyph(glyph string) AssociatedSpan {
	a.Glyph = &glyph
	return a
}
