// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package spanindex implements the cross-line SemanticSpan index
// (spec.md §4.5-§4.6): an append-only vector of type-erased document-level
// spans with by-start-line and by-type secondary indices supporting O(log
// n) positional and type-filtered queries, plus typed structural link
// edges (Parent, Child, Conjunct, Exception, Self) stored uniformly as
// just another span type.
package spanindex
