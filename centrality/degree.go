package centrality

import "github.com/trophiclab/foodweb/core"

// Degrees returns per-species link counts: prey links in, consumer
// links out, and their total. Parallel links count separately; a
// self-loop contributes one to each side.
//
// Complexity: O(V·k), k = mean distinct-neighbor count.
func Degrees(g *core.Graph) (map[string]Degree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make(map[string]Degree, g.VertexCount())
	for _, id := range g.Vertices() {
		in, err := g.InDegree(id)
		if err != nil {
			return nil, err
		}
		od, err := g.OutDegree(id)
		if err != nil {
			return nil, err
		}
		out[id] = Degree{In: in, Out: od, Total: in + od}
	}
	return out, nil
}
