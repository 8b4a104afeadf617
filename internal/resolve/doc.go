// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package resolve implements the resolver engine contract (spec.md §4.4):
// Resolver runs over a single line's Selection and returns CursorAssignments
// for the engine to drain into that line's attribute store; DocumentResolver
// runs over a whole document view and returns SemanticSpans for the engine
// to append to the span index. The engine is cooperative and
// single-threaded (spec.md §5): a resolver that panics on malformed
// internal state aborts the whole pipeline rather than corrupting it
// silently.
package resolve
