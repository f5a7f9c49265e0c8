// SPDX-License-Identifier: MIT

package tidy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcmctidy/samples"
	"github.com/katalvlaran/mcmctidy/tidy"
)

// fixture builds a collection of nChains × nIter draws for the given names,
// with value = 1000*chain + 10*iteration + parameter position (all 1-based).
func fixture(t testing.TB, nChains, nIter int, names []string, opts ...samples.Option) *samples.Collection {
	t.Helper()
	chains := make([][][]float64, nChains)
	for ch := range chains {
		chains[ch] = make([][]float64, nIter)
		for i := range chains[ch] {
			row := make([]float64, len(names))
			for p := range row {
				row[p] = float64(1000*(ch+1) + 10*(i+1) + p + 1)
			}
			chains[ch][i] = row
		}
	}
	src, err := samples.FromMatrices(names, chains...)
	require.NoError(t, err)
	c, err := samples.New(src, opts...)
	require.NoError(t, err)

	return c
}

func TestToLong_Cardinality(t *testing.T) {
	t.Parallel()

	c := fixture(t, 3, 10, []string{"alpha", "beta"})

	all, err := tidy.ToLong(c)
	require.NoError(t, err)
	assert.Equal(t, 60, all.Len())

	one, err := tidy.ToLong(c, "beta")
	require.NoError(t, err)
	assert.Equal(t, 30, one.Len())
	assert.Equal(t, []string{"beta"}, one.Parameters())
}

func TestToLong_Ordering(t *testing.T) {
	t.Parallel()

	c := fixture(t, 2, 2, []string{"a", "b"})
	tab, err := tidy.ToLong(c)
	require.NoError(t, err)

	want := []tidy.Record{
		{Iteration: 1, Chain: 1, Parameter: "a", Value: 1011},
		{Iteration: 2, Chain: 1, Parameter: "a", Value: 1021},
		{Iteration: 1, Chain: 2, Parameter: "a", Value: 2011},
		{Iteration: 2, Chain: 2, Parameter: "a", Value: 2021},
		{Iteration: 1, Chain: 1, Parameter: "b", Value: 1012},
		{Iteration: 2, Chain: 1, Parameter: "b", Value: 1022},
		{Iteration: 1, Chain: 2, Parameter: "b", Value: 2012},
		{Iteration: 2, Chain: 2, Parameter: "b", Value: 2022},
	}
	if diff := cmp.Diff(want, tab.Records()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, tidy.Record{Iteration: 2, Chain: 2, Parameter: "b", Value: 2022}, tab.At(7))
}

func TestToLong_CallerOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	c := fixture(t, 1, 3, []string{"a", "b", "c"})
	tab, err := tidy.ToLong(c, "c", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, tab.Parameters())
	assert.Equal(t, 6, tab.Len())
	assert.Equal(t, "c", tab.At(0).Parameter)
	assert.Equal(t, "a", tab.At(3).Parameter)
}

func TestToLong_Errors(t *testing.T) {
	t.Parallel()

	_, err := tidy.ToLong(nil)
	assert.ErrorIs(t, err, samples.ErrShapeMismatch)

	c := fixture(t, 1, 3, []string{"a"})
	_, err = tidy.ToLong(c, "a", "nope")
	assert.ErrorIs(t, err, samples.ErrUnknownParameter)
}

func TestToLong_Deterministic(t *testing.T) {
	t.Parallel()

	c := fixture(t, 4, 25, []string{"mu", "tau", "theta[1]"})
	a, err := tidy.ToLong(c)
	require.NoError(t, err)
	b, err := tidy.ToLong(c)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Records(), b.Records()); diff != "" {
		t.Fatalf("ToLong not deterministic:\n%s", diff)
	}
}

func TestToLong_RunsAreContiguousAndComplete(t *testing.T) {
	t.Parallel()

	const nChains, nIter = 3, 7
	c := fixture(t, nChains, nIter, []string{"x", "y"})
	tab, err := tidy.ToLong(c)
	require.NoError(t, err)

	runs := tab.Runs()
	require.Len(t, runs, 2*nChains)
	for k, r := range runs {
		assert.Equal(t, k%nChains+1, r.Chain)
		assert.Equal(t, nIter, r.Len)
		for i, rec := range tab.Slice(r) {
			assert.Equal(t, i+1, rec.Iteration, "run %d record %d", k, i)
			assert.Equal(t, r.Parameter, rec.Parameter)
			assert.Equal(t, r.Chain, rec.Chain)
		}
	}
	assert.Equal(t, []float64{1011, 1021, 1031, 1041, 1051, 1061, 1071}, tab.AppendValues(nil, runs[0]))
}

func TestToLong_IterationNumbering(t *testing.T) {
	t.Parallel()

	c := fixture(t, 1, 3, []string{"a"}, samples.WithFirstIteration(501), samples.WithThinInterval(10))
	tab, err := tidy.ToLong(c)
	require.NoError(t, err)

	got := make([]int, 0, tab.Len())
	for _, r := range tab.Records() {
		got = append(got, r.Iteration)
	}
	assert.Equal(t, []int{501, 511, 521}, got)
}

func TestTable_RecordsIsACopy(t *testing.T) {
	t.Parallel()

	tab, err := tidy.ToLong(fixture(t, 1, 2, []string{"a"}))
	require.NoError(t, err)

	recs := tab.Records()
	recs[0].Value = -1
	assert.Equal(t, 1011.0, tab.At(0).Value)
}

func TestNewTable_Validation(t *testing.T) {
	t.Parallel()

	bad := [][]tidy.Record{
		{{Iteration: 0, Chain: 1, Parameter: "a"}},
		{{Iteration: 1, Chain: 0, Parameter: "a"}},
		{{Iteration: 1, Chain: 1, Parameter: ""}},
	}
	for _, recs := range bad {
		_, err := tidy.NewTable(recs)
		assert.ErrorIs(t, err, tidy.ErrInvalidRecord)
	}

	tab, err := tidy.NewTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
	assert.Empty(t, tab.Runs())
}

func TestNewTable_RunsAndParameters(t *testing.T) {
	t.Parallel()

	tab, err := tidy.NewTable([]tidy.Record{
		{Iteration: 1, Chain: 1, Parameter: "b", Value: 1},
		{Iteration: 2, Chain: 1, Parameter: "b", Value: 2},
		{Iteration: 1, Chain: 2, Parameter: "b", Value: 3},
		{Iteration: 1, Chain: 1, Parameter: "a", Value: 4},
		{Iteration: 3, Chain: 1, Parameter: "b", Value: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, tab.Parameters())
	assert.Equal(t, []tidy.Run{
		{Parameter: "b", Chain: 1, Offset: 0, Len: 2},
		{Parameter: "b", Chain: 2, Offset: 2, Len: 1},
		{Parameter: "a", Chain: 1, Offset: 3, Len: 1},
		{Parameter: "b", Chain: 1, Offset: 4, Len: 1},
	}, tab.Runs())
}

func TestTable_Filter(t *testing.T) {
	t.Parallel()

	tab, err := tidy.ToLong(fixture(t, 2, 3, []string{"a", "b", "c"}))
	require.NoError(t, err)

	f, err := tab.Filter("c", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, 12, f.Len())
	assert.Equal(t, []string{"c", "a"}, f.Parameters())

	// Filtering matches ToLong with the same subset.
	c := fixture(t, 2, 3, []string{"a", "b", "c"})
	direct, err := tidy.ToLong(c, "c", "a")
	require.NoError(t, err)
	if diff := cmp.Diff(direct.Records(), f.Records()); diff != "" {
		t.Fatalf("Filter differs from ToLong subset:\n%s", diff)
	}

	_, err = tab.Filter("zzz")
	assert.ErrorIs(t, err, samples.ErrUnknownParameter)
}

func TestTable_Select(t *testing.T) {
	t.Parallel()

	tab, err := tidy.ToLong(fixture(t, 2, 4, []string{"a"}))
	require.NoError(t, err)

	last := tab.Select(func(r tidy.Run, pos int) bool { return pos == r.Len-1 })
	assert.Equal(t, []tidy.Record{
		{Iteration: 4, Chain: 1, Parameter: "a", Value: 1041},
		{Iteration: 4, Chain: 2, Parameter: "a", Value: 2041},
	}, last.Records())
	assert.Equal(t, 8, tab.Len(), "source table untouched")

	none := tab.Select(func(tidy.Run, int) bool { return false })
	assert.Equal(t, 0, none.Len())
}
