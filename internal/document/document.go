// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package document

import (
	"strings"
	"unicode/utf8"

	"github.com/phosphorco/layered-nlp/cerrs"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// Document is the frozen-after-run orchestrator spec.md §4.9 describes.
// Once constructed its line vector and original text never change;
// resolvers only ever append attribute values and spans.
type Document struct {
	originalText string
	lines        []*token.Line
	sourceLines  map[int]string
	index        *spanindex.Index
}

// New tokenizes text into a Document. Newlines separate lines; carriage
// returns are stripped. Malformed input text is rejected here, before any
// resolver runs (spec.md §7 edge case 4): the document is never
// constructed over invalid UTF-8.
func New(text string) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, cerrs.ErrInvalidUTF8
	}

	raw := strings.Split(text, "\n")
	lines := make([]*token.Line, len(raw))
	sourceLines := make(map[int]string, len(raw))
	for i, lineText := range raw {
		lineText = strings.TrimSuffix(lineText, "\r")
		lines[i] = token.NewLine(lineText)
		sourceLines[i] = lineText
	}

	return &Document{
		originalText: text,
		lines:        lines,
		sourceLines:  sourceLines,
		index:        spanindex.New(),
	}, nil
}

// Lines satisfies resolve.DocumentView.
func (d *Document) Lines() []*token.Line { return d.lines }

// SpanIndex satisfies resolve.DocumentView.
func (d *Document) SpanIndex() *spanindex.Index { return d.index }

// OriginalText returns the untouched input, byte-identical to what New
// was given (spec.md §4.9).
func (d *Document) OriginalText() string { return d.originalText }

// SourceLine returns the literal source text of line idx, preserving
// blank-line spacing for display.
func (d *Document) SourceLine(idx int) (string, error) {
	if idx < 0 || idx >= len(d.lines) {
		return "", cerrs.ErrLineOutOfRange
	}
	return d.sourceLines[idx], nil
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the token.Line at idx.
func (d *Document) Line(idx int) (*token.Line, error) {
	if idx < 0 || idx >= len(d.lines) {
		return nil, cerrs.ErrLineOutOfRange
	}
	return d.lines[idx], nil
}

// Run applies a line-level resolver to every line, in document order
// (spec.md §4.9 "run(line_resolver)").
func Run[T any](d *Document, r resolve.Resolver[T]) error {
	return resolve.RunLine(d.lines, r)
}

// RunDocument applies a document-level resolver, appending its spans to
// the index (spec.md §4.9 "run_document(doc_resolver)").
func RunDocument[T any](d *Document, r resolve.DocumentResolver[T]) error {
	return resolve.RunDocument[T](d.index, d, r)
}
