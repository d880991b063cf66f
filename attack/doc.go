// Package attack builds robustness curves: how much of a food web
// survives as growing fractions of its species are knocked out.
//
// What
//
//   - Random(g) removes ⌈f·N⌉ uniformly sampled species at each removal
//     fraction f, averages robustness over repeated trials, and returns
//     the mean curve.
//   - Targeted(g, order) removes the ⌈f·N⌉ leading species of a supplied
//     order (typically the vulnerability ranking, most destructive first)
//     and returns the resulting curve.
//   - Every point runs on a fresh simulation over its own copy of g;
//     the input graph is never mutated.
//
// Why
//
//   - The gap between the random and targeted curves is the classic
//     measure of a network's attack tolerance: webs shrug off random
//     losses but collapse quickly when keystone species go first.
//
// Determinism
//
//	A seed of 0 selects the fixed default seed. Each (fraction, trial)
//	pair draws from its own RNG stream derived by a SplitMix64 mix of
//	the seed and the pair's stream ID, so curves are bit-identical for a
//	given seed regardless of worker count or evaluation order.
//
// Complexity (V = |Vertices|, E = |Edges|, F = fraction count, T = trials)
//
//   - Random:   O(F·T) cascade runs, each O(V + E) plus cloning.
//   - Targeted: O(F) cascade runs.
//
// Options
//
//   - DefaultOptions(): background Context, auto workers, 10 trials,
//     seed 0, the standard 21-point fraction grid 0.0, 0.05, …, 1.0.
//   - WithContext(ctx):   cancel between point dispatches.
//   - WithWorkers(n):     bound concurrent points.
//   - WithTrials(n):      trials per random point (must be positive).
//   - WithSeed(s):        RNG seed; 0 selects the default seed.
//   - WithFractions(fs):  custom removal fractions, each in [0,1].
//   - WithLogger(l):      logger handed to the underlying simulations.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrEmptyOrder      if Targeted gets no removal order for a
//     non-empty graph.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - Cascade errors from grouped removal propagate unchanged (e.g. an
//     order resolving to zero live species).
package attack
