// File: generators.go
// Role: The topology constructors. Each validates first, then emits species
//       and links in a fixed documented order.
package webgen

import (
	"fmt"
	"math/rand"

	"github.com/trophiclab/foodweb/core"
)

// Chain returns a linear food chain of n species,
//
//	s0 → s1 → … → s(n−1),
//
// where s0 is the only basal species. n must be at least 2.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: Chain needs n >= 2, got %d", ErrTooFewSpecies, n)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Chain: %w", err)
			}
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.AddEdge(cfg.id(i), cfg.id(i+1)); err != nil {
				return fmt.Errorf("Chain: %w", err)
			}
		}
		return nil
	}
}

// Fan returns a single basal resource s0 feeding n consumers s1 … sn, so
// the web has n+1 species and n links. n must be at least 1.
func Fan(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: Fan needs n >= 1, got %d", ErrTooFewSpecies, n)
		}
		for i := 0; i <= n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Fan: %w", err)
			}
		}
		for i := 1; i <= n; i++ {
			if _, err := g.AddEdge(cfg.id(0), cfg.id(i)); err != nil {
				return fmt.Errorf("Fan: %w", err)
			}
		}
		return nil
	}
}

// Pyramid returns a trophic pyramid of the given number of levels with
// width species per level. Every species of one level feeds every species
// of the next, so tier 0 (s0 … s(width−1)) is the basal tier and the web
// has levels·width species and width²·(levels−1) links. levels must be at
// least 2 and width at least 1.
func Pyramid(levels, width int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if levels < 2 {
			return fmt.Errorf("%w: Pyramid needs levels >= 2, got %d", ErrTooFewSpecies, levels)
		}
		if width < 1 {
			return fmt.Errorf("%w: Pyramid needs width >= 1, got %d", ErrTooFewSpecies, width)
		}
		for i := 0; i < levels*width; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Pyramid: %w", err)
			}
		}
		for level := 0; level+1 < levels; level++ {
			for prey := 0; prey < width; prey++ {
				for predator := 0; predator < width; predator++ {
					from := cfg.id(level*width + prey)
					to := cfg.id((level+1)*width + predator)
					if _, err := g.AddEdge(from, to); err != nil {
						return fmt.Errorf("Pyramid: %w", err)
					}
				}
			}
		}
		return nil
	}
}

// Random returns a cascade-model random web over n ranked species: every
// ordered pair (si, sj) with i < j carries the link si → sj with
// probability p, drawn from the seed-fixed RNG. Forward-only links keep
// the web acyclic, so s0 is basal whenever it appears in any link and
// species with no drawn prey stay basal. n must be at least 2 and p must
// lie in [0,1].
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: Random needs n >= 2, got %d", ErrTooFewSpecies, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.id(i)); err != nil {
				return fmt.Errorf("Random: %w", err)
			}
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if _, err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
					return fmt.Errorf("Random: %w", err)
				}
			}
		}
		return nil
	}
}
