// SPDX-License-Identifier: MIT

// Package samples: functional configuration for New.
//
//   - WithX constructors panic only on nonsensical values (programmer error),
//     e.g. an empty parameter name or a thinning interval below 1.
//   - User data problems (unknown names, shape) are returned as errors by New.
package samples

import "regexp"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThin numbers consecutive draws 1 apart.
	DefaultThin = 1

	// DefaultFirstIteration numbers the first draw 1.
	DefaultFirstIteration = 1
)

// ---------- Internal panic messages ----------

const (
	panicEmptyParameter = "samples: WithParameters: empty parameter name"
	panicNilFamily      = "samples: WithFamily: nil pattern"
	panicThinInvalid    = "samples: WithThinInterval: interval must be >= 1"
	panicFirstInvalid   = "samples: WithFirstIteration: iteration must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	parameters  []string       // explicit selection, caller order; nil = all
	family      *regexp.Regexp // name filter applied after parameters; nil = none
	description string
	thin        int
	first       int
}

// WithParameters retains only the named parameters, in the given order.
// Repeated names are kept once, at their first position.
func WithParameters(names ...string) Option {
	for _, n := range names {
		if n == "" {
			panic(panicEmptyParameter)
		}
	}
	sel := append([]string(nil), names...)

	return func(o *Options) { o.parameters = sel }
}

// WithFamily retains only parameters whose name matches re.
// Combined with WithParameters, the pattern filters the explicit selection.
func WithFamily(re *regexp.Regexp) Option {
	if re == nil {
		panic(panicNilFamily)
	}

	return func(o *Options) { o.family = re }
}

// WithDescription attaches free text to the collection attributes.
func WithDescription(text string) Option {
	return func(o *Options) { o.description = text }
}

// WithThinInterval records the interval between stored draws.
func WithThinInterval(n int) Option {
	if n < 1 {
		panic(panicThinInvalid)
	}

	return func(o *Options) { o.thin = n }
}

// WithFirstIteration records the sampler's number of the first stored draw.
func WithFirstIteration(n int) Option {
	if n < 1 {
		panic(panicFirstInvalid)
	}

	return func(o *Options) { o.first = n }
}

func defaultOptions() Options {
	return Options{thin: DefaultThin, first: DefaultFirstIteration}
}

// gatherOptions applies user setters on top of base, left to right.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
