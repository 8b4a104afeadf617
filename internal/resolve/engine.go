// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package resolve

import (
	"fmt"
	"log/slog"

	"github.com/phosphorco/layered-nlp/cerrs"
	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/selection"
	"github.com/phosphorco/layered-nlp/internal/spanindex"
	"github.com/phosphorco/layered-nlp/internal/token"
)

// RunLine applies a line-level resolver to every line in document order,
// draining each line's CursorAssignments into its attribute store
// (spec.md §4.4 "document.run(resolver)").
//
// A resolver that panics — malformed internal state, a violated invariant
// it discovers while matching — aborts the whole run; this is a
// programmer bug, not a data error, so it is never swallowed (spec.md
// §4.4 "Failure semantics").
func RunLine[T any](lines []*token.Line, r Resolver[T]) error {
	for i, l := range lines {
		if err := runOneLine(i, l, r); err != nil {
			return err
		}
	}
	return nil
}

func runOneLine[T any](lineIdx int, l *token.Line, r Resolver[T]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("resolver panicked", "resolver", fmt.Sprintf("%T", r), "line", lineIdx, "panic", rec)
			err = fmt.Errorf("%w: %T: line %d: %v", cerrs.ErrResolverAborted, r, lineIdx, rec)
		}
	}()

	assignments := r.Go(selection.Of(l))
	for _, a := range assignments {
		attrstore.InsertWithAssociations[T](l.Store, a.Range, a.Value, a.Associations)
	}
	slog.Debug("line resolver applied", "line", lineIdx, "assignments", len(assignments))
	return nil
}

// RunDocument applies a document-level resolver, appending its
// SemanticSpans to idx (spec.md §4.4 "document.run_document(resolver)").
func RunDocument[T any](idx *spanindex.Index, view DocumentView, r DocumentResolver[T]) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("document resolver panicked", "resolver", fmt.Sprintf("%T", r), "panic", rec)
			err = fmt.Errorf("%w: %T: %v", cerrs.ErrResolverAborted, r, rec)
		}
	}()

	spans := r.Resolve(view)
	for _, sp := range spans {
		idx.Insert(sp.Span, sp.TypeTag, sp.Value, sp.Associations)
	}
	slog.Debug("document resolver applied", "spans", len(spans))
	return nil
}
