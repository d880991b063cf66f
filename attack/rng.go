// Package attack - RNG utilities for the random-removal scenario.
//
// This file centralizes deterministic random generation for curve trials.
//
// Goals:
//   - Determinism: same seed ⇒ identical curves across platforms.
//   - Independence: every (fraction, trial) pair owns its own stream, so
//     results do not depend on evaluation order or worker count.
//   - Safety: no time-based sources, no shared *rand.Rand across goroutines.
package attack

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 finalizer (Vigna 2014),
// eliminating correlations between neighboring streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the deterministic RNG for one (seed, stream) pair.
// Policy: seed==0 ⇒ defaultRNGSeed; derivation is stateless so streams
// can be created in any order by any worker.
//
// Complexity: O(1).
func streamRNG(seed int64, stream uint64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}

// trialStream packs a fraction index and a trial index into one stream
// identifier. Fraction grids and trial counts stay far below 2³², so
// the halves cannot collide.
func trialStream(fraction, trial int) uint64 {
	return uint64(fraction)<<32 | uint64(trial)
}

// samplePrefix returns k distinct species drawn uniformly from species
// via a partial Fisher–Yates shuffle of a scratch copy. k<=0 returns nil.
//
// Complexity: O(n) copy + O(k) swaps.
func samplePrefix(species []string, k int, rng *rand.Rand) []string {
	if k <= 0 {
		return nil
	}
	scratch := make([]string, len(species))
	copy(scratch, species)
	if k > len(scratch) {
		k = len(scratch)
	}

	var i, j int
	for i = 0; i < k; i++ {
		j = i + rng.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:k]
}
