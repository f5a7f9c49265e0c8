// SPDX-License-Identifier: MIT

package stats

import "errors"

var (
	// ErrEmpty is returned when a statistic is requested for no values.
	ErrEmpty = errors.New("stats: no values")

	// ErrInsufficientSamples is returned by SD for fewer than two values.
	ErrInsufficientSamples = errors.New("stats: at least two values required")

	// ErrInvalidProbability is returned for a quantile probability outside [0,1] or NaN.
	ErrInvalidProbability = errors.New("stats: probability must be in [0,1]")
)
