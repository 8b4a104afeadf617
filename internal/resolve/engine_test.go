// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolve_test

import (
	"errors"
	"testing"

	"github.com/phosphorco/layered-nlp/cerrs"
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

type literalResolver struct{ word string }

func (r literalResolver) Go(sel selection.Selection) []selection.CursorAssignment[string] {
	var out []selection.CursorAssignment[string]
	for _, m := range selection.FindBy(sel, selection.Literal(r.word)) {
		out = append(out, selection.Assign(m.Selection, "matched").Build())
	}
	return out
}

func TestRunLineDrainsAssignmentsIntoStore(t *testing.T) {
	lines := []*token.Line{token.NewLine("shall pay shall receive")}

	if err := resolve.RunLine[string](lines, literalResolver{word: "shall"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := attrstore.Get[string](lines[0].Store)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches drained into the store, got %d: %+v", len(got), got)
	}
}

type panickingResolver struct{}

func (panickingResolver) Go(sel selection.Selection) []selection.CursorAssignment[string] {
	panic("invariant violated")
}

func TestRunLineAbortsOnPanic(t *testing.T) {
	lines := []*token.Line{token.NewLine("anything")}

	err := resolve.RunLine[string](lines, panickingResolver{})
	if err == nil {
		t.Fatal("expected an error when the resolver panics")
	}
	if !errors.Is(err, cerrs.ErrResolverAborted) {
		t.Errorf("expected ErrResolverAborted, got %v", err)
	}
}

type fakeDocView struct {
	lines []*token.Line
	idx   *spanindex.Index
}

func (v fakeDocView) Lines() []*token.Line       { return v.lines }
func (v fakeDocView) SpanIndex() *spanindex.Index { return v.idx }

type constantDocResolver struct{ span docpos.DocSpan }

func (r constantDocResolver) Resolve(doc resolve.DocumentView) []spanindex.SemanticSpan {
	return []spanindex.SemanticSpan{{Span: r.span, TypeTag: nil, Value: "doc-level"}}
}

func TestRunDocumentAppendsSpansToIndex(t *testing.T) {
	idx := spanindex.New()
	view := fakeDocView{lines: nil, idx: idx}
	sp := docpos.MustNew(docpos.DocPosition{Line: 0, Token: 0}, docpos.DocPosition{Line: 0, Token: 1})

	if err := resolve.RunDocument[string](idx, view, constantDocResolver{span: sp}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected 1 span inserted, got %d", idx.Len())
	}
}
