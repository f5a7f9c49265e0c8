// SPDX-License-Identifier: MIT

package tidy

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mcmctidy/samples"
)

// Operation name constants for unified error wrapping.
const (
	opToLong   = "ToLong"
	opNewTable = "NewTable"
	opFilter   = "Filter"
)

// ToLong flattens c into a long-format table.
// Implementation:
//   - Stage 1: resolve the parameter list (all, or the caller's subset in the caller's order).
//   - Stage 2: allocate the exact record slice: params × chains × iterations.
//   - Stage 3: for each parameter, for each chain, stream the column of the
//     dense block through one reused buffer and emit records in iteration order.
//
// Iteration numbers follow the collection attributes (1..N by default).
// Repeated names in parameters are emitted once.
//
// Errors:
//   - samples.ErrShapeMismatch for a nil collection.
//   - samples.ErrUnknownParameter for a name not in c.
//
// Determinism:
//   - Same collection and names ⇒ identical table.
//
// Complexity:
//   - Time O(chains × iterations × parameters); Space the same plus O(iterations).
func ToLong(c *samples.Collection, parameters ...string) (*Table, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: nil collection: %w", opToLong, samples.ErrShapeMismatch)
	}

	// Stage 1 (Resolve parameters).
	names := c.Parameters()
	cols := make([]int, 0, len(names))
	if len(parameters) == 0 {
		for j := range names {
			cols = append(cols, j)
		}
	} else {
		for _, p := range parameters {
			j, ok := c.ParameterIndex(p)
			if !ok {
				return nil, fmt.Errorf("%s: %q: %w", opToLong, p, samples.ErrUnknownParameter)
			}
			if !slices.Contains(cols, j) {
				cols = append(cols, j)
			}
		}
	}

	// Stage 2 (Prepare).
	attrs := c.Attributes()
	nChains, nIter := attrs.Chains, attrs.Iterations
	recs := make([]Record, 0, len(cols)*nChains*nIter)
	runs := make([]Run, 0, len(cols)*nChains)
	params := make([]string, 0, len(cols))
	buf := make([]float64, 0, nIter)

	// Stage 3 (Execute): parameter → chain → iteration.
	var err error
	for _, j := range cols {
		name := names[j]
		params = append(params, name)
		for ch := 0; ch < nChains; ch++ {
			buf, err = c.AppendDraws(buf[:0], ch, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opToLong, err)
			}
			runs = append(runs, Run{Parameter: name, Chain: ch + 1, Offset: len(recs), Len: len(buf)})
			for i, v := range buf {
				recs = append(recs, Record{
					Iteration: attrs.IterationNumber(i),
					Chain:     ch + 1,
					Parameter: name,
					Value:     v,
				})
			}
		}
	}

	return &Table{records: recs, params: params, runs: runs}, nil
}

// NewTable wraps caller-built records, e.g. a pre-filtered table with uneven
// groups. Records are copied; their order is kept as given.
//
// Errors: ErrInvalidRecord (iteration < 1, chain < 1 or empty parameter).
func NewTable(records []Record) (*Table, error) {
	for i, r := range records {
		if r.Iteration < 1 || r.Chain < 1 || r.Parameter == "" {
			return nil, fmt.Errorf("%s: record %d %+v: %w", opNewTable, i, r, ErrInvalidRecord)
		}
	}

	return newTable(slices.Clone(records)), nil
}

// Filter returns a new table holding only the named parameters, in the given
// order; within a parameter, records keep their table order.
// Repeated names are kept once.
//
// Errors: samples.ErrUnknownParameter.
// Complexity: O(n).
func (t *Table) Filter(names ...string) (*Table, error) {
	byParam := make(map[string][]Run, len(t.params))
	for _, r := range t.runs {
		byParam[r.Parameter] = append(byParam[r.Parameter], r)
	}

	size := 0
	order := make([]string, 0, len(names))
	for _, n := range names {
		runs, ok := byParam[n]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", opFilter, n, samples.ErrUnknownParameter)
		}
		if slices.Contains(order, n) {
			continue
		}
		order = append(order, n)
		for _, r := range runs {
			size += r.Len
		}
	}

	recs := make([]Record, 0, size)
	for _, n := range order {
		for _, r := range byParam[n] {
			recs = append(recs, t.records[r.Offset:r.Offset+r.Len]...)
		}
	}

	return newTable(recs), nil
}
