// SPDX-License-Identifier: MIT

package tidy

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mcmctidy/samples"
)

const opCollection = "Collection"

// Collection rebuilds a samples.Collection from a well-formed long table, the
// inverse of ToLong. This is the "already long" input path of the adapter.
//
// Well-formed means:
//   - every parameter has one contiguous run per chain, chains listed in the
//     same order for every parameter;
//   - all runs have the same length and carry the same iteration numbers,
//     evenly spaced (the spacing becomes the thinning interval).
//
// Chains are renumbered 1..C in the order they appear. opts are applied after
// the derived thinning interval and first iteration, so callers may override them.
//
// Errors: samples.ErrShapeMismatch, samples.ErrMissingValue, plus any error of samples.New.
func (t *Table) Collection(opts ...samples.Option) (*samples.Collection, error) {
	if len(t.records) == 0 {
		return nil, fmt.Errorf("%s: empty table: %w", opCollection, samples.ErrShapeMismatch)
	}

	// Stage 1: group runs by parameter and check the chain layout.
	byParam := make(map[string][]Run, len(t.params))
	for _, r := range t.runs {
		byParam[r.Parameter] = append(byParam[r.Parameter], r)
	}
	first := byParam[t.params[0]]
	chains := make([]int, len(first))
	for k, r := range first {
		chains[k] = r.Chain
	}
	for _, p := range t.params {
		runs := byParam[p]
		if len(runs) != len(chains) {
			return nil, fmt.Errorf("%s: parameter %q has %d runs, want %d: %w",
				opCollection, p, len(runs), len(chains), samples.ErrShapeMismatch)
		}
		for k, r := range runs {
			if r.Chain != chains[k] {
				return nil, fmt.Errorf("%s: parameter %q run %d is chain %d, want %d: %w",
					opCollection, p, k+1, r.Chain, chains[k], samples.ErrShapeMismatch)
			}
		}
	}
	sorted := slices.Clone(chains)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(chains) {
		return nil, fmt.Errorf("%s: chain listed twice for one parameter: %w", opCollection, samples.ErrShapeMismatch)
	}

	// Stage 2: every run must carry the same evenly spaced iteration numbers.
	ref := t.records[first[0].Offset : first[0].Offset+first[0].Len]
	step := 1
	if len(ref) > 1 {
		step = ref[1].Iteration - ref[0].Iteration
	}
	for i := 1; i < len(ref); i++ {
		if step < 1 || ref[i].Iteration-ref[i-1].Iteration != step {
			return nil, fmt.Errorf("%s: iterations of %q chain %d are not evenly increasing: %w",
				opCollection, first[0].Parameter, first[0].Chain, samples.ErrShapeMismatch)
		}
	}
	offsets := make([][]int, len(t.params))
	for pi, p := range t.params {
		offsets[pi] = make([]int, len(chains))
		for k, r := range byParam[p] {
			if r.Len != len(ref) {
				return nil, fmt.Errorf("%s: %q chain %d has %d iterations, want %d: %w",
					opCollection, p, r.Chain, r.Len, len(ref), samples.ErrShapeMismatch)
			}
			for i, rec := range t.records[r.Offset : r.Offset+r.Len] {
				if rec.Iteration != ref[i].Iteration {
					return nil, fmt.Errorf("%s: %q chain %d iteration %d, want %d: %w",
						opCollection, p, r.Chain, rec.Iteration, ref[i].Iteration, samples.ErrShapeMismatch)
				}
			}
			offsets[pi][k] = r.Offset
		}
	}

	// Stage 3: hand the indexed view to the adapter, which validates and copies.
	src := &longSource{t: t, offsets: offsets, n: len(ref)}
	all := append([]samples.Option{
		samples.WithThinInterval(step),
		samples.WithFirstIteration(ref[0].Iteration),
	}, opts...)

	c, err := samples.New(src, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCollection, err)
	}

	return c, nil
}

// longSource exposes a validated long table through samples.Source.
type longSource struct {
	t       *Table
	offsets [][]int // [parameter][chain] -> first record of the run
	n       int     // iterations per run
}

func (s *longSource) Chains() int { return len(s.offsets[0]) }

func (s *longSource) Iterations(ch int) int {
	if ch < 0 || ch >= len(s.offsets[0]) {
		return 0
	}

	return s.n
}

func (s *longSource) Parameters() []string { return s.t.Parameters() }

func (s *longSource) Value(ch, i, p int) (float64, error) {
	if p < 0 || p >= len(s.offsets) || ch < 0 || ch >= len(s.offsets[p]) || i < 0 || i >= s.n {
		return 0, fmt.Errorf("value(%d,%d,%d): %w", ch, i, p, samples.ErrShapeMismatch)
	}

	return s.t.records[s.offsets[p][ch]+i].Value, nil
}
