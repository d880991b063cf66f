package centrality

import "github.com/trophiclab/foodweb/core"

// PageRank scores species by random-walk visitation over trophic links:
// a walker follows a random consumer link with probability 0.85 or
// teleports uniformly. Species without consumers (apex predators) are
// dangling; their mass is spread uniformly each round.
//
// Power iteration runs until the L1 change drops below 1e-6, at most
// 100 rounds. Scores sum to 1 (within tolerance).
func PageRank(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return map[string]float64{}, nil
	}

	// Distinct-successor lists once, in vertex order. PageRank treats a
	// link pair as one conduit even if the raw file listed it twice.
	succs := make([][]string, n)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	for i, id := range ids {
		out, err := g.PredatorsOf(id)
		if err != nil {
			return nil, err
		}
		succs[i] = out
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}

	base := (1 - pagerankDamping) / float64(n)
	for iter := 0; iter < pagerankMaxIter; iter++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		// Dangling mass: species with no consumers leak their rank
		// back into the pool.
		var dangling float64
		for i := range rank {
			if len(succs[i]) == 0 {
				dangling += rank[i]
			}
		}

		shared := base + pagerankDamping*dangling/float64(n)
		for i := range next {
			next[i] = shared
		}
		for i := range rank {
			if len(succs[i]) == 0 {
				continue
			}
			share := pagerankDamping * rank[i] / float64(len(succs[i]))
			for _, w := range succs[i] {
				next[index[w]] += share
			}
		}

		var diff float64
		for i := range rank {
			d := next[i] - rank[i]
			if d < 0 {
				d = -d
			}
			diff += d
		}
		rank, next = next, rank
		if diff < pagerankTol {
			break
		}
	}

	out := make(map[string]float64, n)
	for i, id := range ids {
		out[id] = rank[i]
	}
	return out, nil
}
