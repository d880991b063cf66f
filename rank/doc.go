// Package rank orders species by how destructive their removal would be,
// measured as the total extinction cascade each single removal triggers.
//
// What
//
//   - Vulnerability(g) scores every species currently present in g.
//   - Each score is the cascade total (primary + secondary extinctions)
//     produced by removing that one species from a private copy of g.
//   - Results are sorted descending by cascade size; ties keep the
//     lexicographic species order.
//
// Why
//
//   - The ranking identifies keystone species: the nodes whose loss
//     collapses the largest share of the food web.
//   - It also feeds the targeted attack scenario, which removes species
//     in exactly this order.
//
// Determinism
//
//	Candidates are taken from core.Vertices() (sorted); each candidate is
//	simulated in isolation over its own clone, and results land in a
//	position-indexed slice before a stable sort. The output is therefore
//	identical across runs and across worker counts.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V) cascade runs, each O(V + E) plus cloning; cascade
//     outcomes are not compositional, so the brute-force sweep is the
//     correct tool at food-web sizes.
//   - Memory: O(V + E) per in-flight worker (the scratch clone).
//
// Options
//
//   - DefaultOptions(): background Context, worker count = runtime.NumCPU().
//   - WithContext(ctx): cancel the sweep between task dispatches.
//   - WithWorkers(n):   bound the number of concurrent scratch simulations.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative
//     worker count).
package rank
