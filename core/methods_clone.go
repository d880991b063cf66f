// File: methods_clone.go
// Role: Cloning and clearing graph instances.
//
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs
//     monotonic on the clone.
//
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges.
//
// Carries over nextEdgeID so that future AddEdge calls on the clone continue
// the same textual sequence and never collide with IDs already seen by the
// caller.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithSelfLoops())
	}
	if g.allowParallel {
		opts = append(opts, WithParallelEdges())
	}
	clone := NewGraph(opts...)
	// Preserve the textual edge ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and both adjacency indexes. Edge IDs are preserved.
//
// The cascade engine leans on this heavily: the immutable snapshot, the
// working graph, and every ranker scratch copy are all Clones, so nothing
// here may share mutable state with the source.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		ensureAdjacency(clone, e.From, e.To)
		clone.out[e.From][e.To][eid] = struct{}{}
		clone.in[e.To][e.From][eid] = struct{}{}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration
// flags.
//
// Behavior:
//   - Reinitializes the vertex set, edge catalog, and both adjacency indexes.
//   - Resets nextEdgeID to 0 (textual edge IDs resume from "e1").
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
// Concurrency: acquires both write locks; not safe to call concurrently with readers.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]struct{})
	g.edges = make(map[string]*Edge)
	g.out = make(map[string]map[string]map[string]struct{})
	g.in = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
