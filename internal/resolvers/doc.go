// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package resolvers is a reference implementation of a small contract-
// analysis resolver chain, built on internal/resolve, internal/selection,
// internal/scope, internal/spanindex, and internal/confidence: contract
// keywords, defined terms, term references, pronoun chains, obligation
// phrases (active and passive voice), polarity tracking (double negation),
// and coordination clause links. It exists to exercise the core end to
// end, not as a complete legal NLP system.
package resolvers
