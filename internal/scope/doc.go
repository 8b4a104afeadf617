// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package scope implements the scope-operator substrate that negation,
// quantifier, and precedence detectors share (spec.md §4.8): a trigger
// token span, a scanning algorithm that finds the token range the trigger
// governs, and interaction detection between operators of different
// dimensions.
package scope
