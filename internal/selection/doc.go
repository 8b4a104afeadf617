// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package selection implements the selection and pattern-matching
// primitives resolvers are built from (spec.md §4.3): Selection is a
// [start, end) token window into a Line; pattern combinators (token text,
// attribute lookups, sequencing, alternation, optionality) scan that
// window without exposing raw indices; and AssignmentBuilder turns a match
// into a CursorAssignment the resolver engine drains into the attribute
// store.
package selection
