// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmctidy/stats"
)

const epsTight = 1e-12

func TestMean(t *testing.T) {
	t.Parallel()

	m, err := stats.Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = stats.Mean(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestSD_SampleDenominator(t *testing.T) {
	t.Parallel()

	// Σ(x-2.5)² = 5 over n-1 = 3.
	sd, err := stats.SD([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(5.0/3.0), sd, epsTight)

	sd, err = stats.SD([]float64{7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sd)
}

func TestSD_InsufficientSamples(t *testing.T) {
	t.Parallel()

	_, err := stats.SD([]float64{42})
	assert.ErrorIs(t, err, stats.ErrInsufficientSamples)

	m, _, err := stats.MeanSD([]float64{42})
	assert.ErrorIs(t, err, stats.ErrInsufficientSamples)
	assert.Equal(t, 42.0, m, "mean is still reported alongside the error")

	_, err = stats.SD(nil)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestQuantiles_Type7HandComputed(t *testing.T) {
	t.Parallel()

	xs := []float64{5, 3, 1, 4, 2} // unsorted on purpose
	qs, err := stats.Quantiles(xs, 0.25, 0.5, 0.75, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 1, 5}, qs)

	// Input untouched.
	assert.Equal(t, []float64{5, 3, 1, 4, 2}, xs)
}

func TestQuantiles_Interpolation(t *testing.T) {
	t.Parallel()

	// n=4: h = 3p. p=0.025 → h=0.075 → 1 + 0.075*(2-1).
	xs := []float64{1, 2, 3, 4}
	qs, err := stats.Quantiles(xs, 0.025, 0.5, 0.975)
	require.NoError(t, err)
	assert.InDelta(t, 1.075, qs[0], epsTight)
	assert.InDelta(t, 2.5, qs[1], epsTight)
	assert.InDelta(t, 3.925, qs[2], epsTight)

	// n=10 values 1..10, p=0.1 → h=0.9 → 1.9.
	ten := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	q, err := stats.Quantile(ten, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.9, q, epsTight)
}

func TestQuantiles_SingleValue(t *testing.T) {
	t.Parallel()

	qs, err := stats.Quantiles([]float64{3.5}, 0, 0.3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 3.5, 3.5}, qs)
}

func TestQuantiles_Errors(t *testing.T) {
	t.Parallel()

	_, err := stats.Quantiles(nil, 0.5)
	assert.ErrorIs(t, err, stats.ErrEmpty)

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = stats.Quantile([]float64{1, 2}, p)
		assert.ErrorIs(t, err, stats.ErrInvalidProbability, "p=%v", p)
	}

	_, err = stats.SortedQuantiles(nil, 0.5)
	assert.ErrorIs(t, err, stats.ErrEmpty)
}

func TestSortedQuantiles_MatchesQuantiles(t *testing.T) {
	t.Parallel()

	xs := []float64{0.3, -1.2, 4.4, 2.0, 0.0, 9.1, -3.3}
	want, err := stats.Quantiles(xs, 0.05, 0.5, 0.95)
	require.NoError(t, err)

	sorted := []float64{-3.3, -1.2, 0.0, 0.3, 2.0, 4.4, 9.1}
	got, err := stats.SortedQuantiles(sorted, 0.05, 0.5, 0.95)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
