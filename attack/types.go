// Package attack - option and error definitions for robustness curves.
package attack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for curve generation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("attack: graph is nil")

	// ErrEmptyOrder is returned when Targeted receives no removal order
	// for a non-empty graph.
	ErrEmptyOrder = errors.New("attack: removal order is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("attack: invalid option supplied")
)

// defaultTrials is how many random draws each fraction point averages.
const defaultTrials = 10

// Curve pairs removal fractions with the robustness measured after
// removing that share of species. Both slices share indexes.
type Curve struct {
	Fractions  []float64
	Robustness []float64
}

// DefaultFractions returns the standard grid 0.0, 0.05, …, 1.0.
func DefaultFractions() []float64 {
	fs := make([]float64, 21)
	for i := range fs {
		fs[i] = float64(i) / 20
	}
	return fs
}

// Option configures curve generation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when a curve is requested.
type Option func(*Options)

// Options holds parameters for curve generation.
type Options struct {
	// Ctx allows cancellation between point dispatches.
	Ctx context.Context

	// Workers bounds concurrent fraction points; 0 selects
	// runtime.NumCPU(), capped at the point count.
	Workers int

	// Trials is the number of random draws averaged per point.
	Trials int

	// Seed drives every RNG stream; 0 selects the fixed default seed.
	Seed int64

	// Fractions is the removal-fraction grid, each value in [0,1].
	Fractions []float64

	// Logger receives recoverable warnings from the underlying
	// simulations (e.g. a sampled species that no longer resolves).
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - auto worker count
//   - 10 trials per random point
//   - seed 0 (the fixed default stream)
//   - the 21-point fraction grid
//   - slog.Default() for warnings
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   0,
		Trials:    defaultTrials,
		Seed:      0,
		Fractions: DefaultFractions(),
		Logger:    slog.Default(),
		err:       nil,
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

// WithWorkers bounds the number of concurrently evaluated points.
//
//	n > 0:  use exactly n workers (capped at the point count)
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

// WithTrials sets how many random draws each fraction point averages.
// Values below 1 are invalid.
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Trials must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithSeed fixes the RNG seed. 0 keeps the default deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithFractions replaces the removal-fraction grid. The grid must be
// non-empty and every value must lie in [0,1].
func WithFractions(fs []float64) Option {
	return func(o *Options) {
		if len(fs) == 0 {
			o.err = fmt.Errorf("%w: Fractions must not be empty", ErrOptionViolation)
			return
		}
		for _, f := range fs {
			if f < 0 || f > 1 {
				o.err = fmt.Errorf("%w: fraction %v outside [0,1]", ErrOptionViolation, f)
				return
			}
		}
		o.Fractions = append([]float64(nil), fs...)
	}
}

// WithLogger routes simulation warnings to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
