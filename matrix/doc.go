// Package matrix provides the dense storage used for per-chain MCMC draws.
//
// A Dense block is an iterations × parameters matrix stored row-major in a
// single flat []float64: one row per iteration, one column per parameter.
// The package provides:
//
//   - NewDense with strict shape validation.
//   - Safe accessors (At, Set, AppendCol) that return sentinel errors instead
//     of panicking.
//   - SelectCols for copy-based column pruning (parameter selection) and Clone.
//   - NaN rejection in Set: a NaN draw is a missing value. ±Inf is accepted.
//
// Blocks are filled row by row with Set and treated as immutable once handed
// to a samples.Collection.
package matrix
