// SPDX-License-Identifier: MIT
// Package summary: sentinel error set.
// Every exported function returns these sentinels wrapped with the operation
// name and group context; callers match them via errors.Is.

package summary

import "errors"

var (
	// ErrInvalidConfidenceLevel is returned for a confidence level outside (0,1).
	ErrInvalidConfidenceLevel = errors.New("summary: confidence level must be in (0,1)")

	// ErrInsufficientSamples is returned when a summary group holds fewer than
	// two draws, so its sample standard deviation is undefined.
	ErrInsufficientSamples = errors.New("summary: insufficient samples")

	// ErrInvalidThinningFactor is returned by Thin for a step below 1.
	ErrInvalidThinningFactor = errors.New("summary: thinning factor must be > 0")
)
