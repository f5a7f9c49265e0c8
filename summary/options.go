// SPDX-License-Identifier: MIT

// Package summary: functional configuration for Summarize.
//
//   - WithConfLevel is validated when the options are gathered, so a bad level
//     surfaces as ErrInvalidConfidenceLevel from every call site that accepts it.
//   - WithWorkers panics on n < 1 (programmer error).
package summary

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultConfLevel yields the 2.5% / 97.5% interval.
	DefaultConfLevel = 0.95

	// DefaultWorkers keeps the computation on the calling goroutine.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "summary: WithWorkers: n must be >= 1"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	confLevel  float64
	perChain   bool
	parameters []string
	workers    int
	logger     *zap.Logger
}

// WithConfLevel sets the credible-interval level p; it must satisfy 0 < p < 1.
func WithConfLevel(p float64) Option {
	return func(o *Options) { o.confLevel = p }
}

// WithPerChain summarizes every (parameter, chain) pair separately instead of
// pooling the chains.
func WithPerChain() Option {
	return func(o *Options) { o.perChain = true }
}

// WithParameters restricts the summary to the named parameters, reported in
// the given order.
func WithParameters(names ...string) Option {
	sel := append([]string(nil), names...)

	return func(o *Options) { o.parameters = sel }
}

// WithWorkers spreads group computation over up to n goroutines. Output is
// identical to the sequential path.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes debug progress to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func defaultOptions() Options {
	return Options{confLevel: DefaultConfLevel, workers: DefaultWorkers}
}

// gatherOptions applies user setters on top of defaults and validates the result.
func gatherOptions(user ...Option) (Options, error) {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if math.IsNaN(o.confLevel) || o.confLevel <= 0 || o.confLevel >= 1 {
		return o, fmt.Errorf("conf level %g: %w", o.confLevel, ErrInvalidConfidenceLevel)
	}

	return o, nil
}
