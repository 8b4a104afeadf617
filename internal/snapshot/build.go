// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package snapshot

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/phosphorco/layered-nlp/internal/attrstore"
	"github.com/phosphorco/layered-nlp/internal/confidence"
	"github.com/phosphorco/layered-nlp/internal/docpos"
	"github.com/phosphorco/layered-nlp/internal/resolve"
)

// Source is what Build reads from: a document view plus the original
// source lines, preserving blank-line spacing (spec.md §6 "text_lines").
// document.Document satisfies this structurally.
type Source interface {
	resolve.DocumentView
	LineCount() int
	SourceLine(idx int) (string, error)
}

// Position is a JSON-friendly DocPosition (spec.md §6 "start: {line,token}").
type Position struct {
	Line  int `json:"line"`
	Token int `json:"token"`
}

func toPosition(p docpos.DocPosition) Position { return Position{Line: p.Line, Token: p.Token} }

// AssocData is the snapshot form of an AssociatedSpan.
type AssocData struct {
	Label           string `json:"label"`
	Glyph           string `json:"glyph,omitempty"`
	TargetIDOrRange string `json:"target_id_or_range"`
}

// SpanData is one attribute/span value's snapshot record (spec.md §6).
type SpanData struct {
	ID           string      `json:"id"`
	Start        Position    `json:"start"`
	End          Position    `json:"end"`
	Value        string      `json:"value"`
	Confidence   float64     `json:"confidence,omitempty"`
	Source       *sourceView `json:"source,omitempty"`
	Associations []AssocData `json:"associations,omitempty"`
}

// Snapshot is the top-level structured output (spec.md §6).
type Snapshot struct {
	TextLines []string              `json:"text_lines"`
	Spans     map[string][]SpanData `json:"spans"`
}

// rawEntry is one type-erased value plus its document position, gathered
// from either a line's attribute store or the document's span index,
// before ID assignment and ordering.
type rawEntry struct {
	start, end docpos.DocPosition
	value      any
	assocs     []attrstore.AssociatedSpan
}

// Build walks src's lines and span index in fixed lexicographic prefix
// order (per reg) and assigns "{prefix}-{n}" IDs in document order (spec.md
// §4.10). redact replaces non-deterministic fields (LLM pass/verifier IDs)
// with "<redacted>" (spec.md §6).
func Build(src Source, reg *Registry, redact bool) (Snapshot, error) {
	snap := Snapshot{Spans: make(map[string][]SpanData)}

	for i := 0; i < src.LineCount(); i++ {
		line, err := src.SourceLine(i)
		if err != nil {
			return Snapshot{}, err
		}
		snap.TextLines = append(snap.TextLines, line)
	}

	for _, t := range reg.sortedTypes() {
		prefix, _ := reg.prefixFor(t)
		entries := gather(src, t)
		sort.SliceStable(entries, func(i, j int) bool { return lessByPosition(entries[i], entries[j]) })

		var out []SpanData
		for n, e := range entries {
			out = append(out, toSpanData(fmt.Sprintf("%s-%d", prefix, n), e, redact))
		}
		if out != nil {
			snap.Spans[prefix] = out
		}
	}

	return snap, nil
}

func lessByPosition(a, b rawEntry) bool {
	if c := a.start.Compare(b.start); c != 0 {
		return c < 0
	}
	return a.end.Compare(b.end) < 0
}

// gather collects every value stored under tag, whether anchored
// line-locally or attached to the document's span index, type-erased so
// the traversal works without a compile-time T (spec.md §4.10).
func gather(src Source, tag reflect.Type) []rawEntry {
	var out []rawEntry

	for lineIdx, l := range src.Lines() {
		for _, raw := range l.Store.Raw(tag) {
			start := docpos.DocPosition{Line: lineIdx, Token: raw.Range.Start}
			end := docpos.DocPosition{Line: lineIdx, Token: raw.Range.End}
			out = append(out, rawEntry{start: start, end: end, value: raw.Value, assocs: raw.Associations})
		}
	}

	for _, sp := range src.SpanIndex().ByTag(tag) {
		out = append(out, rawEntry{start: sp.Span.Start, end: sp.Span.End, value: sp.Value, assocs: sp.Associations})
	}

	return out
}

func toSpanData(id string, e rawEntry, redact bool) SpanData {
	sd := SpanData{
		ID:    id,
		Start: toPosition(e.start),
		End:   toPosition(e.end),
		Value: fmt.Sprintf("%v", e.value),
	}
	if conf, source, ok := extractConfidence(e.value); ok {
		sd.Confidence = conf
		sv := buildSourceView(source, redact)
		sd.Source = &sv
	}
	for _, a := range e.assocs {
		sd.Associations = append(sd.Associations, AssocData{
			Label:           a.Label,
			Glyph:           glyphOf(a.Glyph),
			TargetIDOrRange: targetDescription(a.Target),
		})
	}
	return sd
}

func glyphOf(g *string) string {
	if g == nil {
		return ""
	}
	return *g
}

func targetDescription(target attrstore.SpanRef) string {
	if target.IsLocal() {
		return fmt.Sprintf("local[%d,%d)", target.Local.Start, target.Local.End)
	}
	return target.Doc.String()
}

// confidenceCarrier is implemented by confidence.Scored[T] and
// confidence.ReviewableResult[T] for every T (spec.md §6:
// SpanData.confidence/source). Values of any other type simply have no
// confidence/source in their snapshot.
type confidenceCarrier interface {
	SnapshotConfidence() (float64, confidence.Source)
}

func extractConfidence(value any) (float64, confidence.Source, bool) {
	carrier, ok := value.(confidenceCarrier)
	if !ok {
		return 0, confidence.Source{}, false
	}
	c, s := carrier.SnapshotConfidence()
	return c, s, true
}
