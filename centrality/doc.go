// Package centrality computes structural importance metrics over a
// trophic core.Graph: degrees, closeness, betweenness, and PageRank.
//
// What
//
//   - Degrees(g): prey count (in), consumer count (out), and their sum
//     per species.
//   - Closeness(g): one downstream BFS per species; the normalized form
//     ((r−1)/Σd)·((r−1)/(n−1)) so partially reachable webs compare
//     fairly; species that reach nothing score 0.
//   - Betweenness(g): Brandes' algorithm over directed unweighted
//     links, raw (unnormalized) path counts.
//   - PageRank(g): power iteration with damping 0.85, at most 100
//     rounds, L1 convergence threshold 1e-6, dangling mass spread
//     uniformly.
//   - Compute(g): all of the above merged into one Metrics per species.
//
// Why
//
//   - Centrality profiles complement the cascade-based vulnerability
//     ranking: a species can be structurally central yet cheap to lose,
//     or peripheral yet catastrophic. The report prints both side by side.
//
// Determinism
//
//	Sources iterate in core.Vertices() order and neighbor lists are
//	sorted; per-source results merge in source order, so every metric is
//	bit-identical across runs and worker counts.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Degrees:     O(V)
//   - Closeness:   O(V·(V+E))
//   - Betweenness: O(V·(V+E))
//   - PageRank:    O(iterations·(V+E))
//
// Options
//
//   - DefaultOptions(): background Context, auto workers.
//   - WithContext(ctx): cancel between per-source dispatches or
//     PageRank iterations.
//   - WithWorkers(n):   bound concurrent per-source traversals.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an invalid Option was supplied.
package centrality
