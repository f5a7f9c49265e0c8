// SPDX-License-Identifier: MIT

package summary

import (
	"fmt"

	"github.com/katalvlaran/mcmctidy/samples"
	"github.com/katalvlaran/mcmctidy/tidy"
)

const opThin = "Thin"

// Thin keeps every every-th record of each contiguous (parameter, chain) run,
// starting with the first: positions 1, 1+every, 1+2·every, … of the run.
// A run of length N keeps ceil(N/every) records; every ≥ N keeps only the first.
//
// Runs are never merged, reordered or crossed, and values are copied as-is.
// The input table is not modified.
//
// Errors: ErrInvalidThinningFactor (every < 1), samples.ErrShapeMismatch (nil table).
// Complexity: O(n).
func Thin(t *tidy.Table, every int) (*tidy.Table, error) {
	if every <= 0 {
		return nil, fmt.Errorf("%s: every=%d: %w", opThin, every, ErrInvalidThinningFactor)
	}
	if t == nil {
		return nil, fmt.Errorf("%s: nil table: %w", opThin, samples.ErrShapeMismatch)
	}

	return t.Select(func(_ tidy.Run, pos int) bool { return pos%every == 0 }), nil
}
