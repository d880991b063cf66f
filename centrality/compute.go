package centrality

import "github.com/trophiclab/foodweb/core"

// Compute runs the whole suite and merges it into one Metrics per
// species. The reporter consumes this to print ranking and centrality
// side by side.
func Compute(g *core.Graph, opts ...Option) (map[string]Metrics, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	degrees, err := Degrees(g)
	if err != nil {
		return nil, err
	}
	closeness, err := Closeness(g, opts...)
	if err != nil {
		return nil, err
	}
	betweenness, err := Betweenness(g, opts...)
	if err != nil {
		return nil, err
	}
	pagerank, err := PageRank(g, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Metrics, len(degrees))
	for _, id := range g.Vertices() {
		out[id] = Metrics{
			Degree:      degrees[id],
			Betweenness: betweenness[id],
			Closeness:   closeness[id],
			PageRank:    pagerank[id],
		}
	}
	return out, nil
}
