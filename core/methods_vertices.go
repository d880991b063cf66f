// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex set protected by muVert.
//   - Incident-edge teardown in RemoveVertex under muEdgeAdj.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Under muVert write lock, register the ID; no-op when present.
//
// Adjacency buckets are created lazily by AddEdge, so an isolated vertex
// costs one set entry and nothing else.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Steps:
//  1. Validate non-empty ID (ErrEmptyVertexID).
//  2. Acquire muVert then muEdgeAdj write locks for an atomic topology update.
//  3. Verify vertex presence (ErrVertexNotFound).
//  4. Collect incident edge IDs from both adjacency indexes, then unlink
//     each edge from the catalog and both indexes.
//  5. Delete the vertex and drop its (now empty) top-level buckets.
//
// The dual indexes make this O(deg(id)) instead of a full edge-catalog scan;
// cascade simulations delete vertices in bulk, so this is the hot path.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	// Lock order muVert → muEdgeAdj, as everywhere.
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Gather incident edge IDs first; mutating buckets mid-iteration over
	// the same nested maps is undefined behavior.
	var doomed []string
	for _, edgeSet := range g.out[id] {
		for eid := range edgeSet {
			doomed = append(doomed, eid)
		}
	}
	for _, edgeSet := range g.in[id] {
		for eid := range edgeSet {
			// A self-loop appears in both indexes under the same ID; the
			// catalog delete below is idempotent, so duplicates are harmless.
			doomed = append(doomed, eid)
		}
	}

	var e *Edge
	var ok bool
	for _, eid := range doomed {
		if e, ok = g.edges[eid]; !ok {
			continue
		}
		removeAdjacency(g, e)
		delete(g.edges, eid)
	}

	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// This is the stable enumeration surface: the cascade engine, the ranker,
// and every report iterate through it so that identical inputs yield
// identical outputs.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Prefer this over len(Vertices()) to avoid the O(V log V) sort.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
