// SPDX-License-Identifier: MIT
// Package: stats
//
// Purpose:
//   - Mean and sample SD (N-1 denominator) with a deterministic two-pass scheme.
//   - Type-7 quantiles over a sorted copy; SortedQuantiles skips the copy when
//     the caller already owns sorted data.
//
// Determinism & Performance:
//   - Fixed left-to-right accumulation; results are bit-identical for equal input.
//   - Mean/SD allocate nothing; Quantiles allocates one copy of the input.
//
// Notes:
//   - NaN is not filtered here; callers reject missing values before calling.

package stats

import (
	"fmt"
	"math"
	"slices"
)

// Operation name constants for error wrapping.
const (
	opMean      = "Mean"
	opSD        = "SD"
	opQuantiles = "Quantiles"
)

// Mean returns the arithmetic mean of xs.
// Errors: ErrEmpty. Complexity: O(n).
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%s: %w", opMean, ErrEmpty)
	}

	return mean(xs), nil
}

// SD returns the sample standard deviation of xs (N-1 denominator).
// Errors: ErrEmpty, ErrInsufficientSamples (n == 1). Complexity: O(n).
func SD(xs []float64) (float64, error) {
	_, sd, err := MeanSD(xs)

	return sd, err
}

// MeanSD returns mean and sample SD in one call.
// Implementation:
//   - Stage 1: validate n >= 2.
//   - Stage 2: mean via a single accumulation pass.
//   - Stage 3: Σ(x-mean)² / (n-1) via a second pass (centered, no cancellation from Σx²).
//
// Errors: ErrEmpty, ErrInsufficientSamples. Complexity: O(n), no allocations.
func MeanSD(xs []float64) (m, sd float64, err error) {
	switch len(xs) {
	case 0:
		return 0, 0, fmt.Errorf("%s: %w", opSD, ErrEmpty)
	case 1:
		return xs[0], 0, fmt.Errorf("%s: n=1: %w", opSD, ErrInsufficientSamples)
	}

	m = mean(xs)
	var sumsq, d float64
	for _, x := range xs {
		d = x - m
		sumsq += d * d
	}

	return m, math.Sqrt(sumsq / float64(len(xs)-1)), nil
}

// Quantile returns the type-7 empirical quantile of xs at probability p.
func Quantile(xs []float64, p float64) (float64, error) {
	qs, err := Quantiles(xs, p)
	if err != nil {
		return 0, err
	}

	return qs[0], nil
}

// Quantiles returns the type-7 empirical quantiles of xs at each probability,
// in the order given. xs is not modified.
// Errors: ErrEmpty, ErrInvalidProbability.
// Complexity: O(n log n) for the sort + O(len(ps)).
func Quantiles(xs []float64, ps ...float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%s: %w", opQuantiles, ErrEmpty)
	}
	if err := validateProbabilities(ps); err != nil {
		return nil, err
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	return SortedQuantiles(sorted, ps...)
}

// SortedQuantiles is Quantiles for data already sorted ascending.
// The input is neither copied nor modified.
func SortedQuantiles(sorted []float64, ps ...float64) ([]float64, error) {
	if len(sorted) == 0 {
		return nil, fmt.Errorf("%s: %w", opQuantiles, ErrEmpty)
	}
	if err := validateProbabilities(ps); err != nil {
		return nil, err
	}
	out := make([]float64, len(ps))
	for k, p := range ps {
		out[k] = type7(sorted, p)
	}

	return out, nil
}

func validateProbabilities(ps []float64) error {
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", opQuantiles, p, ErrInvalidProbability)
		}
	}

	return nil
}

// type7 interpolates linearly between the order statistics around h = (n-1)p.
func type7(sorted []float64, p float64) float64 {
	n := len(sorted)
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	if frac == 0 {
		return sorted[lo]
	}

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// mean accumulates left to right; callers guarantee len(xs) > 0.
func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s / float64(len(xs))
}
