// File: types.go
// Role: Sentinel errors, the Constructor contract, and the option surface
//       resolved into the configuration every generator receives.
package webgen

import (
	"errors"
	"strconv"

	"github.com/trophiclab/foodweb/core"
)

// defaultPrefix labels generated species s0, s1, ... unless overridden.
const defaultPrefix = "s"

var (
	// ErrTooFewSpecies reports a size parameter below the generator's
	// documented minimum.
	ErrTooFewSpecies = errors.New("webgen: too few species")

	// ErrInvalidProbability reports a link probability outside [0,1].
	ErrInvalidProbability = errors.New("webgen: probability outside [0,1]")

	// ErrConstructFailed reports a malformed build request, such as a nil
	// constructor.
	ErrConstructFailed = errors.New("webgen: construction failed")
)

// Constructor applies one topology to g using the resolved configuration.
// Implementations validate their parameters before the first mutation and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg config) error

// config is the generator configuration resolved once per Build call.
type config struct {
	prefix string
	seed   int64
}

// id returns the deterministic label of the i-th generated species.
func (c config) id(i int) string { return c.prefix + strconv.Itoa(i) }

// newConfig resolves options over the defaults. Nil options are skipped.
func newConfig(opts ...Option) config {
	cfg := config{prefix: defaultPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Option customizes species labelling and the stochastic generators.
type Option func(*config)

// WithPrefix replaces the species-label prefix. Empty keeps the default.
func WithPrefix(p string) Option {
	return func(c *config) {
		if p != "" {
			c.prefix = p
		}
	}
}

// WithSeed fixes the RNG seed for stochastic generators. Every value is
// valid; equal seeds reproduce identical webs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
