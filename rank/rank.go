package rank

import (
	"context"
	"sort"

	"github.com/trophiclab/foodweb/cascade"
	"github.com/trophiclab/foodweb/core"
	"github.com/trophiclab/foodweb/internal/pool"
)

// Vulnerability scores every species in g by the total cascade its solo
// removal would trigger, most destructive first.
//
// g is never mutated: each candidate is removed from a private scratch
// simulation whose basal set derives from g as it stands now. Ties keep
// the lexicographic candidate order (stable sort).
//
// Steps:
//  1. Validate inputs and options.
//  2. Snapshot the candidate list from g.Vertices().
//  3. Fan the candidates out over the worker pool; each job builds a
//     scratch simulation over its own clone, removes its candidate, and
//     records the cascade total.
//  4. Stable-sort descending by cascade size.
func Vulnerability(g *core.Graph, opts ...Option) ([]Score, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Candidates in deterministic order.
	candidates := g.Vertices()
	if len(candidates) == 0 {
		return nil, nil
	}

	// 3. One scratch simulation per candidate. cascade.New clones g
	// under read locks, so concurrent jobs share g safely.
	scores, err := pool.Map(o.Ctx, o.Workers, candidates, func(_ context.Context, id string) (Score, error) {
		sim, err := cascade.New(g)
		if err != nil {
			return Score{}, err
		}
		ev, err := sim.Remove(id)
		if err != nil {
			return Score{}, err
		}
		return Score{Species: id, Cascade: ev.Total}, nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Most destructive first; stable keeps encounter order on ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Cascade > scores[j].Cascade
	})
	return scores, nil
}

// Top returns the first k entries of ranking, or all of them when
// k exceeds the ranking length. k <= 0 yields nil.
func Top(ranking []Score, k int) []Score {
	if k <= 0 || len(ranking) == 0 {
		return nil
	}
	if k > len(ranking) {
		k = len(ranking)
	}
	out := make([]Score, k)
	copy(out, ranking[:k])
	return out
}
