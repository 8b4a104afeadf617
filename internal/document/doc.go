// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package document implements the document orchestrator (spec.md §4.9):
// it owns the line vector, the untouched original text, a line-index to
// source-line map that preserves blank-line spacing for display, and the
// cross-line SpanIndex. Run/RunDocument apply resolvers in caller-chosen
// order; the query methods give line-local, document-level, and merged
// views over whatever attribute type the caller asks for.
package document
