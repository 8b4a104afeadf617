// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package docpos implements the document-wide coordinate system (spec.md
// §3): DocPosition{line, token} with lexicographic ordering, and DocSpan, a
// half-open [start, end) range over positions supporting containment, overlap, merge,
// and relation classification. These are the small immutable value types
// every cross-line structure in the resolver core is built from.
package docpos
