// Package samples normalizes multi-chain MCMC output into one canonical,
// immutable Collection.
//
// What is a Collection?
//
//	An ordered list of chains, each an iterations × parameters block of draws,
//	with one shared ordered list of parameter names. Every chain has the same
//	number of iterations and no draw is missing (NaN).
//
// Inputs:
//
//	Anything that satisfies Source: chain count, per-chain iteration count,
//	an ordered parameter list and indexed value access. FromChains and
//	FromMatrices adapt the common "one matrix per chain" sampler output;
//	a *Collection is itself a Source, so collections can be re-filtered.
//
// Usage:
//
//	src, err := samples.FromMatrices([]string{"alpha", "beta"}, chain1, chain2)
//	c, err := samples.New(src, samples.WithParameters("beta"))
//
// Errors:
//
//	ErrShapeMismatch   : chains disagree on iteration count or parameter set.
//	ErrUnknownParameter: a requested parameter is not present.
//	ErrMissingValue    : a draw is NaN.
//
// No numeric transformation happens here: structural validation and optional
// column pruning only, so later stages never re-check shape.
package samples
