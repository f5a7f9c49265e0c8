// Package mcmctidy turns raw MCMC sampler output into tidy tables.
//
// Given one draw matrix per chain (iterations × parameters), the module
// validates the chains, flattens them into a long table of
// (iteration, chain, parameter, value) records, and computes compact
// summaries: mean, sample SD, median and a credible interval per parameter,
// pooled across chains or per chain. Long tables can be thinned, filtered and
// rebuilt into collections.
//
// Packages:
//
//	matrix/           dense row-major storage for one chain's draws
//	samples/          Source interface and the validated Collection
//	tidy/             ToLong, long tables, runs, Filter, Select, Collection
//	stats/            mean, sample SD, type-7 quantiles
//	summary/          Summarize, SummarizeCollection, Thin
//	internal/chainio/ CSV chain files (plain, gzip, zstd), CSV/YAML writers
//	cmd/mcmctidy/     the long, summary and thin commands
//
// Quick example:
//
//	src, _ := samples.FromMatrices([]string{"mu", "tau"}, chain1, chain2)
//	c, _ := samples.New(src)
//	s, _ := summary.SummarizeCollection(c, summary.WithConfLevel(0.9))
//	for _, r := range s.Records() {
//		fmt.Println(r.Parameter, r.Mean, r.Lower, r.Upper)
//	}
//
// All computations are deterministic; no stage mutates its input.
//
//	go get github.com/katalvlaran/mcmctidy
package mcmctidy
