// Package rank - option and error definitions for the vulnerability ranker.
package rank

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for ranking execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("rank: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rank: invalid option supplied")
)

// Score ties a species to the total cascade its removal alone triggers.
type Score struct {
	// Species is the vertex ID of the removed candidate.
	Species string

	// Cascade counts every extinction of the candidate's removal:
	// the candidate itself plus all secondary losses.
	Cascade int
}

// Option configures ranking behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Vulnerability is invoked.
type Option func(*Options)

// Options holds parameters for a ranking sweep.
type Options struct {
	// Ctx allows cancellation between task dispatches.
	Ctx context.Context

	// Workers bounds concurrent scratch simulations.
	// 0 selects runtime.NumCPU(), capped at the candidate count.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Workers == 0 (auto: NumCPU capped at candidate count)
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

// WithWorkers bounds the number of concurrent scratch simulations.
//
//	n > 0:  use exactly n workers (capped at the candidate count)
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
