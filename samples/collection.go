// SPDX-License-Identifier: MIT

package samples

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/mcmctidy/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opFromChains = "FromChains"
)

// Chain is one sampler chain as a row-per-iteration matrix together with the
// parameter names labelling its columns.
type Chain struct {
	Parameters []string
	Draws      [][]float64 // Draws[i][p]: iteration i, parameter p
}

// New validates src and copies it into a canonical Collection.
// Implementation:
//   - Stage 1: validate chain count, parameter list and equal iteration counts.
//   - Stage 2: resolve the parameter selection (WithParameters, then WithFamily).
//   - Stage 3: copy draws into one dense block per chain, rejecting NaN.
//
// When src is already a *Collection its blocks are pruned with SelectCols,
// or cloned when every parameter is retained, so the result never shares
// storage with src; its description and iteration numbering carry over unless overridden.
//
// Errors:
//   - ErrShapeMismatch, ErrUnknownParameter, ErrMissingValue (all wrapped).
//
// Complexity:
//   - Time O(chains × iterations × parameters), Space the same.
func New(src Source, opts ...Option) (*Collection, error) {
	// Stage 1 (Validate shape).
	if src == nil {
		return nil, fmt.Errorf("%s: nil source: %w", opNew, ErrShapeMismatch)
	}
	base := defaultOptions()
	if c, ok := src.(*Collection); ok {
		if c == nil {
			return nil, fmt.Errorf("%s: nil collection: %w", opNew, ErrShapeMismatch)
		}
		base.description, base.thin, base.first = c.attrs.Description, c.attrs.Thin, c.attrs.FirstIteration
	}
	o := gatherOptions(base, opts...)
	nChains := src.Chains()
	if nChains < 1 {
		return nil, fmt.Errorf("%s: %d chains: %w", opNew, nChains, ErrShapeMismatch)
	}
	names := src.Parameters()
	if err := validateNames(names); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	nIter := src.Iterations(0)
	if nIter < 1 {
		return nil, fmt.Errorf("%s: chain 1 has %d iterations: %w", opNew, nIter, ErrShapeMismatch)
	}
	for ch := 1; ch < nChains; ch++ {
		if n := src.Iterations(ch); n != nIter {
			return nil, fmt.Errorf("%s: chain %d has %d iterations, chain 1 has %d: %w",
				opNew, ch+1, n, nIter, ErrShapeMismatch)
		}
	}

	// Stage 2 (Select parameters).
	cols, err := selectColumns(names, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	kept := make([]string, len(cols))
	index := make(map[string]int, len(cols))
	for k, j := range cols {
		kept[k] = names[j]
		index[names[j]] = k
	}

	// Stage 3 (Copy draws).
	var blocks []*matrix.Dense
	if c, ok := src.(*Collection); ok {
		blocks, err = pruneBlocks(c, cols)
	} else {
		blocks, err = copyBlocks(src, nChains, nIter, cols)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &Collection{
		params: kept,
		index:  index,
		chains: blocks,
		attrs: Attributes{
			Chains:         nChains,
			Iterations:     nIter,
			Parameters:     len(kept),
			Description:    o.description,
			Thin:           o.thin,
			FirstIteration: o.first,
		},
	}, nil
}

// validateNames rejects empty lists, empty names and duplicates.
func validateNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("no parameters: %w", ErrShapeMismatch)
	}
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("empty parameter name: %w", ErrShapeMismatch)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("duplicate parameter %q: %w", n, ErrShapeMismatch)
		}
		seen[n] = struct{}{}
	}

	return nil
}

// selectColumns resolves the options into source column indices, in output order.
func selectColumns(names []string, o Options) ([]int, error) {
	var cols []int
	if o.parameters == nil {
		cols = make([]int, len(names))
		for j := range names {
			cols[j] = j
		}
	} else {
		pos := make(map[string]int, len(names))
		for j, n := range names {
			pos[n] = j
		}
		cols = make([]int, 0, len(o.parameters))
		for _, n := range o.parameters {
			j, ok := pos[n]
			if !ok {
				return nil, fmt.Errorf("%q: %w", n, ErrUnknownParameter)
			}
			if !slices.Contains(cols, j) {
				cols = append(cols, j)
			}
		}
	}

	if o.family != nil {
		cols = slices.DeleteFunc(cols, func(j int) bool { return !o.family.MatchString(names[j]) })
		if len(cols) == 0 {
			return nil, fmt.Errorf("family %q matches no parameter: %w", o.family.String(), ErrUnknownParameter)
		}
	}

	return cols, nil
}

// copyBlocks reads every selected draw through the Source interface.
func copyBlocks(src Source, nChains, nIter int, cols []int) ([]*matrix.Dense, error) {
	blocks := make([]*matrix.Dense, nChains)
	var ch, i, k int
	for ch = 0; ch < nChains; ch++ {
		d, err := matrix.NewDense(nIter, len(cols))
		if err != nil {
			return nil, err
		}
		for i = 0; i < nIter; i++ {
			for k = range cols {
				v, err := src.Value(ch, i, cols[k])
				if err != nil {
					return nil, fmt.Errorf("chain %d: %w", ch+1, err)
				}
				if err = d.Set(i, k, v); err != nil {
					if errors.Is(err, matrix.ErrNaN) {
						return nil, fmt.Errorf("chain %d, iteration %d, parameter %d: %w", ch+1, i+1, cols[k]+1, ErrMissingValue)
					}
					return nil, err
				}
			}
		}
		blocks[ch] = d
	}

	return blocks, nil
}

// pruneBlocks copies the selected columns of an existing collection.
func pruneBlocks(c *Collection, cols []int) ([]*matrix.Dense, error) {
	identity := len(cols) == len(c.params)
	for k, j := range cols {
		identity = identity && k == j
	}
	if identity {
		blocks := make([]*matrix.Dense, len(c.chains))
		for ch, b := range c.chains {
			blocks[ch] = b.Clone()
		}

		return blocks, nil
	}

	blocks := make([]*matrix.Dense, len(c.chains))
	for ch, b := range c.chains {
		s, err := b.SelectCols(cols)
		if err != nil {
			return nil, err
		}
		blocks[ch] = s
	}

	return blocks, nil
}

// FromChains adapts per-chain matrices into a Source, checking that every
// chain carries the same ordered parameter names and that every row has one
// value per parameter. Iteration counts are checked by New.
//
// The draws are referenced, not copied; New performs the copy.
func FromChains(chains ...Chain) (Source, error) {
	if len(chains) == 0 {
		return nil, fmt.Errorf("%s: no chains: %w", opFromChains, ErrShapeMismatch)
	}
	names := chains[0].Parameters
	if err := validateNames(names); err != nil {
		return nil, fmt.Errorf("%s: chain 1: %w", opFromChains, err)
	}
	draws := make([][][]float64, len(chains))
	for ch, c := range chains {
		if !slices.Equal(c.Parameters, names) {
			return nil, fmt.Errorf("%s: chain %d parameters %v differ from chain 1 %v: %w",
				opFromChains, ch+1, c.Parameters, names, ErrShapeMismatch)
		}
		for i, row := range c.Draws {
			if len(row) != len(names) {
				return nil, fmt.Errorf("%s: chain %d, iteration %d has %d values, want %d: %w",
					opFromChains, ch+1, i+1, len(row), len(names), ErrShapeMismatch)
			}
		}
		draws[ch] = c.Draws
	}

	return &chainSource{params: slices.Clone(names), draws: draws}, nil
}

// FromMatrices is FromChains for chains that share one parameter list.
func FromMatrices(parameters []string, chains ...[][]float64) (Source, error) {
	cs := make([]Chain, len(chains))
	for ch, d := range chains {
		cs[ch] = Chain{Parameters: parameters, Draws: d}
	}

	return FromChains(cs...)
}

// chainSource serves Source over [][]float64 chain matrices.
type chainSource struct {
	params []string
	draws  [][][]float64 // [chain][iteration][parameter]
}

func (s *chainSource) Chains() int { return len(s.draws) }

func (s *chainSource) Iterations(ch int) int {
	if ch < 0 || ch >= len(s.draws) {
		return 0
	}

	return len(s.draws[ch])
}

func (s *chainSource) Parameters() []string { return slices.Clone(s.params) }

func (s *chainSource) Value(ch, i, p int) (float64, error) {
	if ch < 0 || ch >= len(s.draws) || i < 0 || i >= len(s.draws[ch]) || p < 0 || p >= len(s.params) {
		return 0, fmt.Errorf("value(%d,%d,%d): %w", ch, i, p, matrix.ErrOutOfRange)
	}

	return s.draws[ch][i][p], nil
}
