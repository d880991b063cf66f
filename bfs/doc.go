// Package bfs provides breadth-first traversal over a trophic core.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore species in non-decreasing hop distance from a start species.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from species → distance (links) from the start
//   - Parent: map from species → its predecessor in the BFS tree
//   - Traversal direction is selectable:
//   - Downstream (default): follow prey→predator links, i.e. the species
//     a disturbance at the start can starve.
//   - Upstream: follow predator→prey links, i.e. the diet closure.
//   - BothWays: ignore link direction entirely.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a species is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual links via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Hop distances feed closeness centrality and reachability analysis.
//   - Downstream reach answers “how far can a perturbation at this
//     species travel?”; upstream reach answers “what ultimately feeds it?”.
//
// Determinism
//
//	Neighbor lists come from core.PreyOf / core.PredatorsOf, which are
//	sorted lexicographically, and BFS enqueues them in that order, so the
//	visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each species and link seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Options
//
//   - DefaultOptions(): background Context, Downstream direction, no-op
//     hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithDirection(d):       choose Downstream, Upstream, or BothWays.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip links for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook before a species is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start species does not exist.
//   - ErrOptionViolation      if an invalid Option was supplied.
//   - ErrNeighbors            if a neighbor lookup fails mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
