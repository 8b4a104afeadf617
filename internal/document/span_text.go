// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package document

import (
	"strings"

	"github.com/phosphorco/layered-nlp/cerrs"
	"github.com/phosphorco/layered-nlp/internal/docpos"
)

// SpanText reconstructs the text a DocSpan covers by walking tokens from
// span.Start to span.End, inserting a single space at line boundaries.
// Text is never cached; the token vectors are the source of truth (spec.md
// §4.5 "span_text", §3 "never cached" decision).
func (d *Document) SpanText(span docpos.DocSpan) (string, error) {
	if span.Start.Line < 0 || span.End.Line >= len(d.lines) {
		return "", cerrs.ErrLineOutOfRange
	}

	if span.Start.Line == span.End.Line {
		return d.lines[span.Start.Line].TokenText(span.Start.Token, span.End.Token), nil
	}

	var b strings.Builder
	b.WriteString(d.lines[span.Start.Line].TokenText(span.Start.Token, d.lines[span.Start.Line].Len()))
	for lineIdx := span.Start.Line + 1; lineIdx < span.End.Line; lineIdx++ {
		b.WriteByte(' ')
		b.WriteString(d.lines[lineIdx].TokenText(0, d.lines[lineIdx].Len()))
	}
	b.WriteByte(' ')
	b.WriteString(d.lines[span.End.Line].TokenText(0, span.End.Token))
	return b.String(), nil
}
