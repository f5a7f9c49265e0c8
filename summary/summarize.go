// SPDX-License-Identifier: MIT
// Package: summary
//
// Purpose:
//   - Group a long table by parameter (pooled) or by (parameter, chain).
//   - Compute mean, sample SD and type-7 quantiles per group.
//   - Optionally fan groups out to workers and merge by slot, so the output
//     order never depends on scheduling.
//
// Determinism & Performance:
//   - Group values are gathered into one shared backing slice (one allocation).
//   - Mean/SD are accumulated in table order before the group is sorted in
//     place for the quantiles; results are bit-identical run to run.

package summary

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcmctidy/samples"
	"github.com/katalvlaran/mcmctidy/stats"
	"github.com/katalvlaran/mcmctidy/tidy"
)

// Operation name constants for unified error wrapping.
const (
	opSummarize           = "Summarize"
	opSummarizeCollection = "SummarizeCollection"
)

// group holds the draws of one summary row.
type group struct {
	param  string
	chain  int       // AllChains when pooled
	values []float64 // private copy; sorted in place after Mean/SD
}

// groupKey identifies a group while the table is scanned.
type groupKey struct {
	param string
	chain int
}

// Summarize computes the summary table of a long table.
// Implementation:
//   - Stage 1: gather options (ErrInvalidConfidenceLevel), apply WithParameters.
//   - Stage 2: group values (pooled or per chain) in output order.
//   - Stage 3: validate every group up front (size, NaN) so failures are deterministic.
//   - Stage 4: compute rows sequentially or on WithWorkers goroutines.
//
// Output order: parameters by first appearance (or WithParameters order), chains
// ascending within a parameter. Uneven group sizes are accepted.
//
// Errors:
//   - ErrInvalidConfidenceLevel, ErrInsufficientSamples,
//     samples.ErrUnknownParameter, samples.ErrMissingValue, samples.ErrShapeMismatch (nil table).
//
// Complexity:
//   - Time O(n log n) worst case for the per-group sorts; Space O(n).
func Summarize(t *tidy.Table, opts ...Option) (*Table, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarize, err)
	}
	if t == nil {
		return nil, fmt.Errorf("%s: nil table: %w", opSummarize, samples.ErrShapeMismatch)
	}
	if len(o.parameters) > 0 {
		if t, err = t.Filter(o.parameters...); err != nil {
			return nil, fmt.Errorf("%s: %w", opSummarize, err)
		}
	}

	out, err := summarize(t, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarize, err)
	}

	return out, nil
}

// SummarizeCollection reshapes c with tidy.ToLong (restricted to
// WithParameters when given) and summarizes the result.
func SummarizeCollection(c *samples.Collection, opts ...Option) (*Table, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarizeCollection, err)
	}
	t, err := tidy.ToLong(c, o.parameters...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarizeCollection, err)
	}

	out, err := summarize(t, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSummarizeCollection, err)
	}

	return out, nil
}

// summarize runs Stages 2-4 on an already filtered table.
func summarize(t *tidy.Table, o Options) (*Table, error) {
	groups := buildGroups(t, o.perChain)
	o.logger.Debug("summarizing",
		zap.Int("records", t.Len()),
		zap.Int("groups", len(groups)),
		zap.Bool("per_chain", o.perChain),
		zap.Float64("conf_level", o.confLevel),
		zap.Int("workers", o.workers))

	// Stage 3 (Validate): fail fast before any statistic is computed.
	for i := range groups {
		if err := validateGroup(&groups[i]); err != nil {
			return nil, err
		}
	}

	// Stage 4 (Execute).
	lo, hi := intervalProbabilities(o.confLevel)
	probs := [3]float64{lo, 0.5, hi}
	rows := make([]Record, len(groups))
	if o.workers <= 1 || len(groups) < 2 {
		for i := range groups {
			r, err := summarizeGroup(&groups[i], probs)
			if err != nil {
				return nil, err
			}
			rows[i] = r
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(o.workers)
		for i := range groups {
			eg.Go(func() error {
				r, err := summarizeGroup(&groups[i], probs)
				if err != nil {
					return err
				}
				rows[i] = r // each worker owns slot i

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}
	o.logger.Debug("summary complete", zap.Int("rows", len(rows)))

	return &Table{
		records:    rows,
		confLevel:  o.confLevel,
		perChain:   o.perChain,
		lowerLabel: QuantileLabel(lo),
		upperLabel: QuantileLabel(hi),
	}, nil
}

// buildGroups gathers group values in output order.
// Pass 1 sizes every group; pass 2 copies run values into one shared backing
// slice, preserving table order within a group.
func buildGroups(t *tidy.Table, perChain bool) []group {
	runs := t.Runs()
	paramOrder := make(map[string]int)
	for i, p := range t.Parameters() {
		paramOrder[p] = i
	}

	keyOf := func(r tidy.Run) groupKey {
		if perChain {
			return groupKey{param: r.Parameter, chain: r.Chain}
		}

		return groupKey{param: r.Parameter, chain: AllChains}
	}

	// Pass 1 (Size).
	sizes := make(map[groupKey]int)
	keys := make([]groupKey, 0)
	for _, r := range runs {
		k := keyOf(r)
		if _, ok := sizes[k]; !ok {
			keys = append(keys, k)
		}
		sizes[k] += r.Len
	}
	slices.SortStableFunc(keys, func(a, b groupKey) int {
		if d := paramOrder[a.param] - paramOrder[b.param]; d != 0 {
			return d
		}

		return a.chain - b.chain
	})

	// Pass 2 (Copy).
	groups := make([]group, len(keys))
	slot := make(map[groupKey]int, len(keys))
	backing := make([]float64, 0, t.Len())
	for i, k := range keys {
		start := len(backing)
		backing = backing[:start+sizes[k]]
		groups[i] = group{param: k.param, chain: k.chain, values: backing[start : start : start+sizes[k]]}
		slot[k] = i
	}
	for _, r := range runs {
		g := &groups[slot[keyOf(r)]]
		g.values = t.AppendValues(g.values, r)
	}

	return groups
}

// validateGroup rejects groups whose statistics would be undefined.
func validateGroup(g *group) error {
	if len(g.values) < 2 {
		return fmt.Errorf("%s: %d draw(s): %w", g.describe(), len(g.values), ErrInsufficientSamples)
	}
	for i, v := range g.values {
		if math.IsNaN(v) {
			return fmt.Errorf("%s: draw %d: %w", g.describe(), i+1, samples.ErrMissingValue)
		}
	}

	return nil
}

// summarizeGroup computes one row. Mean/SD run before the in-place sort.
func summarizeGroup(g *group, probs [3]float64) (Record, error) {
	m, sd, err := stats.MeanSD(g.values)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %v: %w", g.describe(), err, ErrInsufficientSamples)
	}
	slices.Sort(g.values)
	qs, err := stats.SortedQuantiles(g.values, probs[:]...)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", g.describe(), err)
	}

	return Record{
		Parameter: g.param,
		Chain:     g.chain,
		Mean:      m,
		SD:        sd,
		Lower:     qs[0],
		Median:    qs[1],
		Upper:     qs[2],
	}, nil
}

func (g *group) describe() string {
	if g.chain == AllChains {
		return fmt.Sprintf("parameter %q", g.param)
	}

	return fmt.Sprintf("parameter %q chain %d", g.param, g.chain)
}
