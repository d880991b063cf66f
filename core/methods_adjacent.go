// File: methods_adjacent.go
// Role: Neighborhood & degree APIs (PreyOf, PredatorsOf, InDegree, OutDegree)
//       and adjacency helpers.
//
// Determinism:
//   - PreyOf() / PredatorsOf() return unique IDs sorted lex asc.
//
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.
package core

import "sort"

// PreyOf returns the unique prey of the given predator: every vertex with at
// least one edge into id, sorted lexicographically ascending.
//
// Steps:
//  1. Validate id (ErrEmptyVertexID) and existence (ErrVertexNotFound).
//  2. Collect the keys of in[id] and sort them.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k log k), k = number of distinct prey.
func (g *Graph) PreyOf(id string) ([]string, error) {
	return g.neighborKeys(id, true)
}

// PredatorsOf returns the unique consumers of the given prey: every vertex
// with at least one edge out of id, sorted lexicographically ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k log k), k = number of distinct predators.
func (g *Graph) PredatorsOf(id string) ([]string, error) {
	return g.neighborKeys(id, false)
}

// neighborKeys collects the sorted bucket keys of in[id] or out[id].
func (g *Graph) neighborKeys(id string, incoming bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order muVert → muEdgeAdj, as in the mutators, so a vertex cannot
	// vanish between the existence check and the bucket snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	buckets := g.out[id]
	if incoming {
		buckets = g.in[id]
	}

	ids := make([]string, 0, len(buckets))
	for v := range buckets {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// InDegree returns the number of incoming edges of id. Parallel edges count
// separately; a self-loop contributes exactly one.
//
// This is the quantity extinction cascades run on: a non-basal vertex whose
// InDegree reaches zero has lost its entire diet.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k), k = number of distinct prey.
func (g *Graph) InDegree(id string) (int, error) {
	return g.degree(id, true)
}

// OutDegree returns the number of outgoing edges of id. Parallel edges count
// separately; a self-loop contributes exactly one.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(k), k = number of distinct predators.
func (g *Graph) OutDegree(id string) (int, error) {
	return g.degree(id, false)
}

// degree sums bucket sizes of in[id] or out[id].
func (g *Graph) degree(id string, incoming bool) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	buckets := g.out[id]
	if incoming {
		buckets = g.in[id]
	}

	n := 0
	for _, edgeSet := range buckets {
		n += len(edgeSet)
	}

	return n, nil
}

// ensureAdjacency guarantees that out[from][to] and in[to][from] buckets are
// initialized. Must be called only under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.out[from] == nil {
		g.out[from] = make(map[string]map[string]struct{})
	}
	if g.out[from][to] == nil {
		g.out[from][to] = make(map[string]struct{})
	}
	if g.in[to] == nil {
		g.in[to] = make(map[string]map[string]struct{})
	}
	if g.in[to][from] == nil {
		g.in[to][from] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from both adjacency indexes, pruning buckets
// that become empty. Must be called only under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.out[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.out[e.From], e.To)
		}
	}
	if m := g.in[e.To][e.From]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.in[e.To], e.From)
		}
	}
}
