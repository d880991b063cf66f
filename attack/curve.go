package attack

import (
	"context"
	"math"

	"github.com/trophiclab/foodweb/cascade"
	"github.com/trophiclab/foodweb/core"
	"github.com/trophiclab/foodweb/internal/pool"
)

// removalCount converts fraction f of n species into a head count,
// ⌈f·n⌉ clamped to [0,n]. The epsilon absorbs binary-representation
// slop so exact multiples of 1/n do not ceil one species too high.
func removalCount(f float64, n int) int {
	k := int(math.Ceil(f*float64(n) - 1e-9))
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	return k
}

// pointIndexes enumerates 0..n-1 for fan-out over the fraction grid.
func pointIndexes(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Random produces the random-failure robustness curve of g.
//
// Each fraction point averages Options.Trials independent draws; every
// draw removes ⌈f·N⌉ uniformly sampled species from a fresh simulation
// and measures the surviving share. Per-trial RNG streams derive from
// the seed alone, so the curve is reproducible at any worker count.
func Random(g *core.Graph, opts ...Option) (Curve, error) {
	if g == nil {
		return Curve{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Curve{}, o.err
	}

	species := g.Vertices()
	n := len(species)

	robustness, err := pool.Map(o.Ctx, o.Workers, pointIndexes(len(o.Fractions)), func(_ context.Context, fi int) (float64, error) {
		k := removalCount(o.Fractions[fi], n)

		var sum float64
		for trial := 0; trial < o.Trials; trial++ {
			sim, err := cascade.New(g, cascade.WithLogger(o.Logger))
			if err != nil {
				return 0, err
			}
			if k > 0 {
				picks := samplePrefix(species, k, streamRNG(o.Seed, trialStream(fi, trial)))
				if _, err := sim.RemoveGroup(picks...); err != nil {
					return 0, err
				}
			}
			sum += sim.Robustness()
		}
		return sum / float64(o.Trials), nil
	})
	if err != nil {
		return Curve{}, err
	}

	return Curve{
		Fractions:  append([]float64(nil), o.Fractions...),
		Robustness: robustness,
	}, nil
}

// Targeted produces the targeted-attack robustness curve of g, removing
// species strictly in the supplied order (most destructive first, as
// produced by rank.Vulnerability).
//
// Each fraction point removes the leading ⌈f·N⌉ entries of order from a
// fresh simulation. Orders shorter than ⌈f·N⌉ are used in full.
func Targeted(g *core.Graph, order []string, opts ...Option) (Curve, error) {
	if g == nil {
		return Curve{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Curve{}, o.err
	}

	n := g.VertexCount()
	if n > 0 && len(order) == 0 {
		return Curve{}, ErrEmptyOrder
	}

	robustness, err := pool.Map(o.Ctx, o.Workers, pointIndexes(len(o.Fractions)), func(_ context.Context, fi int) (float64, error) {
		k := removalCount(o.Fractions[fi], n)
		if k > len(order) {
			k = len(order)
		}

		sim, err := cascade.New(g, cascade.WithLogger(o.Logger))
		if err != nil {
			return 0, err
		}
		if k > 0 {
			if _, err := sim.RemoveGroup(order[:k]...); err != nil {
				return 0, err
			}
		}
		return sim.Robustness(), nil
	})
	if err != nil {
		return Curve{}, err
	}

	return Curve{
		Fractions:  append([]float64(nil), o.Fractions...),
		Robustness: robustness,
	}, nil
}
