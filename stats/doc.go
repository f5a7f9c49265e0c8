// Package stats holds the numeric kernels behind MCMC summaries:
// arithmetic mean, sample standard deviation and empirical quantiles.
//
// Quantiles use linear interpolation between order statistics (the
// "type 7" definition): for n sorted values x[0..n-1] and probability p,
// h = (n-1)·p and Q(p) = x[⌊h⌋] + (h-⌊h⌋)·(x[⌊h⌋+1] - x[⌊h⌋]).
//
//	Q([1,2,3,4,5], 0.25) = 2
//	Q([1,2,3,4,5], 0.50) = 3
//	Q([1,2,3,4,5], 0.75) = 4
//
// Inputs are never modified; Quantiles sorts a private copy once and reads
// every requested probability from it.
package stats
