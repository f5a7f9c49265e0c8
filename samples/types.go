// SPDX-License-Identifier: MIT

package samples

import "github.com/katalvlaran/mcmctidy/matrix"

// Source is the only contract a sampler-producing collaborator must satisfy.
// All indices are zero-based.
type Source interface {
	// Chains returns the number of chains.
	Chains() int

	// Iterations returns the number of draws recorded for the given chain.
	Iterations(chain int) int

	// Parameters returns the ordered parameter names shared by all chains.
	Parameters() []string

	// Value returns the draw of parameter p at iteration i of chain c.
	Value(c, i, p int) (float64, error)
}

// Attributes describes a Collection.
type Attributes struct {
	Chains     int // number of chains (>= 1)
	Iterations int // draws per chain (>= 1)
	Parameters int // retained parameters (>= 1)

	// Description is free text carried along for reports.
	Description string

	// Thin is the interval between recorded draws and FirstIteration the
	// sampler's number of the first recorded draw. Both default to 1, which
	// numbers draws 1..Iterations.
	Thin           int
	FirstIteration int
}

// IterationNumber maps a zero-based draw position to the sampler's iteration number.
func (a Attributes) IterationNumber(pos int) int {
	return a.FirstIteration + pos*a.Thin
}

// Collection is the canonical, immutable multi-chain sample set.
// Construct it with New; the zero value is not usable.
type Collection struct {
	params []string        // ordered parameter names
	index  map[string]int  // name -> column
	chains []*matrix.Dense // one iterations × parameters block per chain
	attrs  Attributes
}

// Compile-time check: a Collection can feed New again.
var _ Source = (*Collection)(nil)

// Chains returns the number of chains.
func (c *Collection) Chains() int { return len(c.chains) }

// Iterations returns the draw count of chain ch, or 0 when ch is out of range.
func (c *Collection) Iterations(ch int) int {
	if ch < 0 || ch >= len(c.chains) {
		return 0
	}

	return c.chains[ch].Rows()
}

// Parameters returns a copy of the ordered parameter names.
func (c *Collection) Parameters() []string {
	out := make([]string, len(c.params))
	copy(out, c.params)

	return out
}

// Value returns the draw of parameter p at iteration i of chain ch.
func (c *Collection) Value(ch, i, p int) (float64, error) {
	if ch < 0 || ch >= len(c.chains) {
		return 0, matrix.ErrOutOfRange
	}

	return c.chains[ch].At(i, p)
}

// ParameterIndex returns the column of the named parameter.
func (c *Collection) ParameterIndex(name string) (int, bool) {
	j, ok := c.index[name]

	return j, ok
}

// Attributes returns the collection metadata.
func (c *Collection) Attributes() Attributes { return c.attrs }

// AppendDraws appends the draws of parameter p in chain ch, in iteration
// order, to dst. Reusing dst[:0] keeps repeated scans allocation-free.
func (c *Collection) AppendDraws(dst []float64, ch, p int) ([]float64, error) {
	if ch < 0 || ch >= len(c.chains) {
		return dst, matrix.ErrOutOfRange
	}

	return c.chains[ch].AppendCol(dst, p)
}
