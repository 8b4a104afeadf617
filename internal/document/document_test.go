// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package document_test

import (
	"reflect"
	"testing"

	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/document"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
)

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := document.New(string([]byte{0xff, 0xfe, 0xfd}))
	if err == nil {
		t.Fatal("expected invalid UTF-8 to be rejected before construction")
	}
}

func TestNewPreservesOriginalTextAndBlankLines(t *testing.T) {
	text := "first line\n\nthird line"
	doc, err := document.New(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.OriginalText() != text {
		t.Errorf("expected original text preserved byte-identical")
	}
	if doc.LineCount() != 3 {
		t.Fatalf("expected 3 lines (blank line preserved), got %d", doc.LineCount())
	}
	blank, err := doc.SourceLine(1)
	if err != nil || blank != "" {
		t.Errorf("expected blank line 1 to be empty, got %q err=%v", blank, err)
	}
}

func TestEmptyDocumentIsValid(t *testing.T) {
	doc, err := document.New("")
	if err != nil {
		t.Fatalf("unexpected error constructing an empty document: %v", err)
	}
	if doc.LineCount() != 1 {
		t.Fatalf("expected splitting \"\" on newlines to yield a single empty line, got %d", doc.LineCount())
	}
}

type literalResolver struct{ word string }

func (r literalResolver) Go(sel selection.Selection) []selection.CursorAssignment[string] {
	var out []selection.CursorAssignment[string]
	if m, ok := selection.MatchFirstForwards(sel, selection.Literal(r.word)); ok {
		out = append(out, selection.Assign(m.Selection, "matched:"+r.word).Build())
	}
	return out
}

func TestRunAppliesLineResolverToEveryLine(t *testing.T) {
	doc, err := document.New("shall pay\nshall deliver")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.Run[string](doc, literalResolver{word: "shall"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line0, _ := document.QueryLine[string](doc, 0)
	line1, _ := document.QueryLine[string](doc, 1)
	if len(line0) != 1 || len(line1) != 1 {
		t.Fatalf("expected both lines to have one match, got %v %v", line0, line1)
	}
}

type constantDocResolver struct{ span docpos.DocSpan }

func (r constantDocResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	tag := reflect.TypeOf((*string)(nil)).Elem()
	return []spanindex.SemanticSpan{{Span: r.span, TypeTag: tag, Value: "doc-span"}}
}

func TestRunDocumentAppendsToSpanIndex(t *testing.T) {
	doc, err := document.New("one line of text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := docpos.MustNew(docpos.DocPosition{Line: 0, Token: 0}, docpos.DocPosition{Line: 0, Token: 1})
	if err := document.RunDocument[string](doc, constantDocResolver{span: span}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docSpans := document.QueryDoc[string](doc)
	if len(docSpans) != 1 {
		t.Fatalf("expected 1 document-level span, got %d", len(docSpans))
	}
}

func TestQueryAllMergesLineAndDocumentSpans(t *testing.T) {
	doc, err := document.New("shall pay")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := document.Run[string](doc, literalResolver{word: "shall"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := docpos.MustNew(docpos.DocPosition{Line: 0, Token: 0}, docpos.DocPosition{Line: 0, Token: 1})
	if err := document.RunDocument[string](doc, constantDocResolver{span: span}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := document.QueryAll[string](doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 unified spans (1 line + 1 document), got %d: %+v", len(all), all)
	}

	var sawLine, sawDoc bool
	for _, u := range all {
		switch u.Source {
		case document.SourceLine:
			sawLine = true
		case document.SourceDocument:
			sawDoc = true
		}
	}
	if !sawLine || !sawDoc {
		t.Errorf("expected both a line and a document source in the merged view, got %+v", all)
	}
}

func TestSpanTextAcrossLines(t *testing.T) {
	doc, err := document.New("first line\nsecond line\nthird line")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := docpos.MustNew(docpos.DocPosition{Line: 0, Token: 0}, docpos.DocPosition{Line: 2, Token: 1})
	got, err := doc.SpanText(span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first line second line third" {
		t.Errorf("unexpected span text: %q", got)
	}
}

func TestSpanTextOutOfRange(t *testing.T) {
	doc, _ := document.New("one line")
	_, err := doc.SpanText(docpos.MustNew(docpos.DocPosition{Line: 0, Token: 0}, docpos.DocPosition{Line: 5, Token: 1}))
	if err == nil {
		t.Fatal("expected an out-of-range span to error")
	}
}

func TestDocumentViewSatisfiesResolveInterface(t *testing.T) {
	doc, _ := document.New("text")
	var _ resolve.DocumentView = doc
}
