package centrality

import (
	"context"

	"github.com/trophiclab/foodweb/bfs"
	"github.com/trophiclab/foodweb/core"
	"github.com/trophiclab/foodweb/internal/pool"
)

// Closeness scores every species by how near it sits to everything it
// can reach downstream (prey→predator direction).
//
// The normalized form for graphs that are not strongly connected:
//
//	C(u) = ((r−1)/Σd) · ((r−1)/(n−1))
//
// where r counts the species u reaches (u included) and Σd sums their
// hop distances. Species reaching nothing score 0.
func Closeness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	sources := g.Vertices()
	n := len(sources)
	if n == 0 {
		return map[string]float64{}, nil
	}

	scores, err := pool.Map(o.Ctx, o.Workers, sources, func(ctx context.Context, src string) (float64, error) {
		res, err := bfs.BFS(g, src, bfs.WithContext(ctx))
		if err != nil {
			return 0, err
		}

		reached := len(res.Depth) // includes src at depth 0
		sum := 0
		for _, d := range res.Depth {
			sum += d
		}
		if reached <= 1 || sum == 0 || n <= 1 {
			return 0, nil
		}

		r := float64(reached - 1)
		return (r / float64(sum)) * (r / float64(n-1)), nil
	})
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, n)
	for i, src := range sources {
		out[src] = scores[i]
	}
	return out, nil
}
