// Package tidy flattens a samples.Collection into a long-format table: one
// Record per (iteration, chain, parameter) draw.
//
// Ordering:
//
//	Records are ordered by parameter (declared order, or the caller's order
//	when a subset is requested), then by chain, then by iteration. Every
//	(parameter, chain) pair therefore owns exactly one contiguous run of
//	records in iteration order; thinning and summarising rely on it.
//
// Usage:
//
//	t, err := tidy.ToLong(collection)           // every parameter
//	t, err := tidy.ToLong(collection, "sigma")  // one parameter
//
//	for _, run := range t.Runs() {
//	    recs := t.Slice(run)
//	    ...
//	}
//
// A Table is immutable: accessors return copies, and transformations
// (Filter, summary.Thin) build new tables.
//
// Performance:
//
//	ToLong walks the dense chain blocks directly with one allocation for the
//	record slice and one reusable column buffer; no per-record map lookups.
package tidy
