// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package confidence implements the confidence/ambiguity/review wrapper
// types (spec.md §3, §4.7): Scored[T] carries a value with a confidence
// and a provenance Source; Ambiguous[T] ranks a best interpretation
// against alternatives and flags known ambiguity classes; ReviewableResult
// wraps an Ambiguous[T] with an explicit needs_review decision. Confidence
// composition is multiplicative with a floor, never zero, so long resolver
// chains never vanish to a confidence of 0.
package confidence
