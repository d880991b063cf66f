// Package webgen builds synthetic food webs: deterministic topologies for
// tests, benchmarks and examples, plus a seeded cascade-model random web.
//
// What
//
//   - Build(gopts, wopts, cons...) creates a graph, resolves the generator
//     configuration, and applies every Constructor in order.
//   - Chain(n) is a linear food chain, Fan(n) a single resource feeding n
//     consumers, Pyramid(levels, width) a trophic pyramid with complete
//     links between adjacent tiers.
//   - Random(n, p) draws a cascade-model web: forward-only links between
//     ranked species, so the result is always acyclic.
//
// Determinism
//
//	Generators emit species and links in a fixed documented order, and the
//	stochastic generator draws from a seed-fixed RNG, so the same options
//	and constructor order always reproduce the identical web.
//
// Errors
//
//	Constructors validate before mutating and return sentinel errors
//	(ErrTooFewSpecies, ErrInvalidProbability, ErrConstructFailed) wrapped
//	with context; branch with errors.Is. Nothing in this package panics.
package webgen
