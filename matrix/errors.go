// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every constructor and accessor returns one of these sentinels
// (possibly wrapped with call-site context) and tests check them via errors.Is.
// No exported function panics on a user-triggered error condition.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Call sites attach coordinates with denseErrorf; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/AppendCol) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN signals an attempt to store NaN, i.e. a missing draw.
	ErrNaN = errors.New("matrix: NaN encountered")
)
