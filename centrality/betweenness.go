package centrality

import (
	"context"

	"github.com/trophiclab/foodweb/core"
	"github.com/trophiclab/foodweb/internal/pool"
)

// Betweenness scores every species by the number of shortest directed
// trophic paths passing through it (Brandes' accumulation, raw counts,
// endpoints excluded). Fractions occur when several equally short paths
// share a stretch.
func Betweenness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	sources := g.Vertices()
	out := make(map[string]float64, len(sources))
	for _, id := range sources {
		out[id] = 0
	}
	if len(sources) == 0 {
		return out, nil
	}

	partials, err := pool.Map(o.Ctx, o.Workers, sources, func(_ context.Context, src string) (map[string]float64, error) {
		return brandesSource(g, src)
	})
	if err != nil {
		return nil, err
	}

	// Merge in source order so float accumulation is reproducible.
	for _, part := range partials {
		for id, d := range part {
			out[id] += d
		}
	}
	return out, nil
}

// brandesSource runs the single-source stage of Brandes' algorithm:
// a BFS that counts shortest paths (σ) and records predecessor lists,
// then a reverse-order dependency accumulation.
func brandesSource(g *core.Graph, src string) (map[string]float64, error) {
	var (
		stack []string
		preds = map[string][]string{}
		sigma = map[string]float64{src: 1}
		dist  = map[string]int{src: 0}
		queue = []string{src}
	)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		succs, err := g.PredatorsOf(v)
		if err != nil {
			return nil, err
		}
		for _, w := range succs {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			// Every equally short arrival adds v's path count.
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}

	delta := make(map[string]float64, len(stack))
	contrib := make(map[string]float64)
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range preds[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if w != src && delta[w] > 0 {
			contrib[w] = delta[w]
		}
	}
	return contrib, nil
}
