// Package core provides a thread-safe, in-memory directed graph tuned for
// trophic (predator-prey) networks.
//
// The graph G = (V,E) is always directed and unweighted: an edge From→To
// records that species To consumes species From (prey → predator). The type
// supports exactly the behaviors a food-web pipeline needs:
//
//   - Self-loops (cannibalism) behind WithSelfLoops()
//   - Parallel edges (raw, uncleaned input) behind WithParallelEdges()
//   - Constant-time edge operations via nested maps:
//     out[prey][predator][edgeID] and in[predator][prey][edgeID]
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why a dedicated in-index?
//
// Extinction cascades are driven by in-degree: a consumer whose last food
// source disappears goes extinct. The incoming-adjacency map makes
// InDegree(id) and PreyOf(id) proportional to the vertex's own degree rather
// than to the total edge count, which matters because the cascade engine
// rescans degrees after every deletion round.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges sorted by Edge.ID ascending.
//   - PreyOf()/PredatorsOf() return unique IDs sorted lexicographically.
//
// Every algorithm in this repository iterates through these surfaces, never
// through raw map order, so runs are reproducible byte-for-byte.
//
// Concurrency model:
//
// Lock order is muVert → muEdgeAdj everywhere; mutators take write locks,
// queries read locks. All exported methods are safe for concurrent use.
//
// Errors are strict sentinels (ErrEmptyVertexID, ErrVertexNotFound,
// ErrEdgeNotFound, ErrLoopNotAllowed, ErrParallelEdgeNotAllowed); check them
// with errors.Is.
package core
