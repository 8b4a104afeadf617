// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package attrstore implements the per-line type-erased attribute store
// (spec.md §4.2): a mapping from opaque type-identity to two parallel
// ordered sequences — values and their provenance associations — with a
// strict alignment invariant enforced on every mutation. insert and
// insert_with_associations are the only mutators; everything else is a
// read path keyed by type or by range.
package attrstore
