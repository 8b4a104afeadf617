// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package token implements the tokenizer and line model (spec.md §4.1).
// It turns raw contract text into a deterministic stream of Tokens grouped
// into Lines with stable integer indices and character offsets. Tokens and
// Lines are immutable once produced; the contract is determinism and offset
// fidelity, not syntactic sophistication.
package token
