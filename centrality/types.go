// Package centrality - option and error definitions for the metric suite.
package centrality

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for metric computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)

// PageRank iteration constants.
const (
	pagerankDamping = 0.85
	pagerankMaxIter = 100
	pagerankTol     = 1e-6
)

// Degree counts a species' trophic links.
type Degree struct {
	// In is the number of prey links feeding the species.
	In int

	// Out is the number of consumer links leaving it.
	Out int

	// Total is In + Out.
	Total int
}

// Metrics bundles every centrality score for one species.
type Metrics struct {
	Degree      Degree
	Betweenness float64
	Closeness   float64
	PageRank    float64
}

// Option configures metric computation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when a metric is requested.
type Option func(*Options)

// Options holds parameters for metric computation.
type Options struct {
	// Ctx allows cancellation between per-source dispatches and
	// PageRank iterations.
	Ctx context.Context

	// Workers bounds concurrent per-source traversals.
	// 0 selects runtime.NumCPU(), capped at the source count.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Workers == 0 (auto)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the number of concurrent per-source traversals.
//
//	n > 0:  use exactly n workers
//	n == 0: auto (runtime.NumCPU())
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// buildOptions folds opts over the defaults and surfaces the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
