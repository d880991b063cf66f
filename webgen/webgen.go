// File: webgen.go
// Role: The single public orchestrator composing constructors over a fresh
//       graph with one resolved configuration.
package webgen

import (
	"fmt"

	"github.com/trophiclab/foodweb/core"
)

// Build creates a new graph with the supplied core options, resolves the
// generator configuration from wopts, and applies all constructors in
// order. The first constructor error is wrapped and returned; mutations
// applied by earlier constructors are kept on the discarded graph.
//
// Composing constructors that emit the same link twice needs a graph built
// with core.WithParallelEdges(), exactly as raw field data does.
func Build(gopts []core.GraphOption, wopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(wopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil constructor at index %d", ErrConstructFailed, i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
