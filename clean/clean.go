// Package clean normalizes raw decoded food webs before analysis.
//
// Archive files habitually list the same trophic link more than once;
// Dedupe collapses those records while keeping self-loops, because a
// cannibal link is data, not noise. Analyses run on the cleaned copy;
// the raw graph stays as decoded.
package clean

import (
	"errors"

	"github.com/trophiclab/foodweb/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("clean: graph is nil")

// Dedupe returns a copy of g with parallel links collapsed and reports
// how many duplicate records it dropped.
//
// For each (prey, predator) pair the earliest-created edge survives,
// so file order decides which record represents the link. Self-loops
// pass through untouched. The result permits self-loops but no longer
// parallel edges; g itself is not modified.
func Dedupe(g *core.Graph) (*core.Graph, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	out := core.NewGraph(core.WithSelfLoops())
	for _, id := range g.Vertices() {
		if err := out.AddVertex(id); err != nil {
			return nil, 0, err
		}
	}

	type link struct{ from, to string }
	seen := make(map[link]bool, g.EdgeCount())
	removed := 0

	for _, e := range core.InsertionOrder(g.Edges()) {
		key := link{e.From, e.To}
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		if _, err := out.AddEdge(e.From, e.To); err != nil {
			return nil, 0, err
		}
	}

	return out, removed, nil
}
