// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/
//       EdgeCount/FilterEdges. Also: nextEdgeID().
//
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge records the trophic interaction prey→predator and returns the new
// edge's ID.
//
// Steps:
//  1. Validate IDs; reject loops unless WithSelfLoops().
//  2. Ensure both endpoints exist via AddVertex.
//  3. Under muEdgeAdj write lock, reject a duplicate (prey,predator) pair
//     unless WithParallelEdges().
//  4. Generate the edge ID atomically, store the edge, link both adjacency
//     indexes.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrParallelEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(prey, predator string) (string, error) {
	// 1) Input validation
	if prey == "" || predator == "" {
		return "", ErrEmptyVertexID
	}
	if prey == predator && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(prey); err != nil {
		return "", err
	}
	if err := g.AddVertex(predator); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowParallel {
		if inner := g.out[prey][predator]; len(inner) > 0 {
			return "", ErrParallelEdgeNotAllowed
		}
	}

	// 4) Generate a new unique textual edge ID in O(1) without fmt allocations.
	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: prey, To: predator}
	g.edges[eid] = e
	ensureAdjacency(g, prey, predator)
	g.out[prey][predator][eid] = struct{}{}
	g.in[predator][prey][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
//
// Steps:
//  1. Lock muEdgeAdj.
//  2. Lookup e, ErrEdgeNotFound if missing.
//  3. Delete from the catalog and unlink both adjacency indexes.
//
// Complexity: O(1) average.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge prey→predator exists.
// Complexity: O(1).
func (g *Graph) HasEdge(prey, predator string) bool {
	if prey == "" || predator == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[prey][predator]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
//
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1) average.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Note the order is lexicographic over the textual ID; use InsertionOrder on
// the result when creation sequence matters.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// InsertionOrder re-sorts a slice of edges by their numeric creation sequence
// ("e2" before "e10"). The slice is sorted in place and returned.
//
// Deduplication keeps the first-recorded interaction of a pair, which is a
// creation-order notion, not a lexicographic one.
func InsertionOrder(edges []*Edge) []*Edge {
	sort.Slice(edges, func(i, j int) bool { return edgeSeq(edges[i].ID) < edgeSeq(edges[j].ID) })

	return edges
}

// edgeSeq extracts the numeric suffix of a textual edge ID. Malformed IDs
// sort first; they cannot be produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	if len(eid) < 2 || eid[0] != edgeIDPrefix {
		return 0
	}
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
//
// Contract:
//   - pred is pure; must not mutate the graph.
//
// Complexity: O(E) scan.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
//
// Performance:
//   - Avoids fmt.Sprintf to remove heap churn in hot paths.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
