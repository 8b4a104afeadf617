// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package snapshot implements the diffable snapshot/ID core (spec.md
// §4.10, §6): a Registry maps attribute/span types to stable short
// prefixes; Build walks a document's line stores and span index in fixed
// lexicographic prefix order, assigning IDs "{prefix}-{n}" in document
// order, and produces a structured Snapshot that is byte-identical across
// repeated runs of the same resolver chain over the same input (after
// redaction of non-deterministic fields).
package snapshot
