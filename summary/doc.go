// Package summary computes compact statistical summaries of MCMC draws and
// thins long-format tables.
//
// Summaries:
//
//	For every parameter (or every (parameter, chain) pair with WithPerChain)
//	the engine reports mean, sample standard deviation (N-1), median and a
//	two-sided credible interval whose bounds are the (1-p)/2 and 1-(1-p)/2
//	type-7 empirical quantiles for confidence level p (default 0.95, i.e. the
//	2.5% and 97.5% quantiles).
//
//	Without WithPerChain all chains of a parameter are pooled: the raw draws
//	are concatenated before any statistic is taken. Per-chain means are never
//	averaged.
//
// Usage:
//
//	s, err := summary.SummarizeCollection(c,
//	    summary.WithConfLevel(0.9),
//	    summary.WithPerChain(),
//	    summary.WithWorkers(4),
//	)
//	thinned, err := summary.Thin(longTable, 10)
//
// Errors:
//
//	ErrInvalidConfidenceLevel: confidence level outside (0,1).
//	ErrInsufficientSamples   : a group holds fewer than two draws.
//	ErrInvalidThinningFactor : non-positive thinning step.
//	samples.ErrUnknownParameter, samples.ErrMissingValue: from the input.
//
// Every error aborts the whole call; a partial summary is never returned.
package summary
