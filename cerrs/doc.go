// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes the structural-invariant failures the resolver core can
// raise — attribute/association misalignment, out-of-range association
// targets, inverted spans, broken bidirectional links — plus the handful of
// host-level errors (bad input path, invalid UTF-8) the CLI runner reports.
// The Error type supports comparison via errors.Is().
package cerrs
