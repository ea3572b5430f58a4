// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the shape
// package. All functions return these sentinels and tests check them via
// errors.Is. No function panics on user-triggered error conditions.

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned whenever the actual structure disagrees
	// with the inferred or declared size vector: a wrong per-level length,
	// nesting deeper than the declared rank, or a sequence where the vector
	// demands a scalar. Wrapped messages carry the expected and actual numbers.
	ErrDimensionMismatch = errors.New("shape: dimension mismatch")

	// ErrCyclicStructure marks a structural self-reference (a slice reachable
	// from itself). Treated as a fatal input error rather than walked forever.
	ErrCyclicStructure = errors.New("shape: cyclic structure")
)

// ErrExpectedSequence names the case where the size vector demands a sequence
// at some depth but a scalar was found. It wraps ErrDimensionMismatch, so
// errors.Is matches either sentinel.
var ErrExpectedSequence = fmt.Errorf("shape: expected a sequence, found a scalar: %w", ErrDimensionMismatch)
