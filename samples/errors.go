// SPDX-License-Identifier: MIT
// Package samples: sentinel error set.
// All constructors return these sentinels wrapped with call-site context;
// callers match them via errors.Is.

package samples

import "errors"

var (
	// ErrShapeMismatch is returned when chains disagree on iteration count or
	// parameter set, or when a source has no chains, iterations or parameters.
	ErrShapeMismatch = errors.New("samples: shape mismatch")

	// ErrUnknownParameter is returned when a requested parameter name is not
	// present in the source.
	ErrUnknownParameter = errors.New("samples: unknown parameter")

	// ErrMissingValue is returned when a draw is NaN.
	ErrMissingValue = errors.New("samples: missing value")
)
