// Package cascade implements the extinction-cascade engine for trophic
// networks: primary removals, iterative secondary extinctions, status
// tracking, and the robustness/diet-loss metrics derived from them.
//
// What
//
//   - New(g) snapshots a food web and prepares a mutable working copy.
//   - Remove / RemoveIndex extinguish one species; RemoveGroup /
//     RemoveGroupByIndex extinguish several simultaneously; RemoveSequence
//     applies single removals in order, skipping unresolvable entries.
//   - After the primaries are deleted, the engine repeatedly deletes every
//     non-basal species whose in-degree reached zero, until a scan produces
//     no candidates (fixed point).
//   - Every operation yields an Event {Step, Primary, Secondary, Total,
//     Remaining}, appends a full status snapshot to the history, and leaves
//     the snapshot graph untouched.
//   - Robustness() and DietLoss() read the working graph against the
//     snapshot; Summary() aggregates the run so far; Reset() restores the
//     constructed state exactly.
//
// The basal rule
//
//	Species with in-degree 0 in the ORIGINAL snapshot form the basal set.
//	Membership never changes during a run: a species that organically loses
//	all prey later is NOT retroactively basal and goes extinct. Basal species
//	are immune to secondary extinction only; removing one directly as a
//	primary target always takes effect.
//
// Status model
//
//	Each species holds exactly one Status: StatusAlive, StatusPrimaryExtinct,
//	StatusSecondaryExtinct, or StatusAffected. Transitions are monotonic:
//	alive → {primary | secondary | affected}; affected may become extinct;
//	extinct never reverts except via Reset. A species is StatusAffected iff
//	it survived the operation and lost at least one edge during it.
//
// Determinism
//
//	All scans iterate core.Vertices() (lexicographic order), so the Secondary
//	list of an Event, the history, and every derived metric are reproducible
//	byte-for-byte. The fixed point itself is order-independent: each round
//	deletes the full batch of zero-in-degree non-basal species, so the set of
//	extinctions never depends on enumeration order.
//
// Termination
//
//	Each non-empty round strictly decreases the vertex count, bounded by the
//	original count, so a cascade resolves in at most |V| rounds.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - One removal operation: O(V·R + E) where R ≤ V is the number of rounds;
//     in practice R is tiny for ecological networks.
//   - Robustness: O(1). DietLoss: O(V·k) for prey-bucket sums.
//
// Concurrency
//
//	A Simulation is owned by one goroutine; methods must not be called
//	concurrently. The underlying graphs are safe to clone at any time, which
//	is how the vulnerability ranker runs engines in parallel, one scratch
//	Simulation per worker.
//
// Errors
//
//   - ErrNilGraph          if New is given a nil graph.
//   - ErrSpeciesNotFound   if a single removal names an absent species.
//   - ErrIndexOutOfRange   if a positional argument is outside the current range.
//   - ErrNoValidTargets    if a grouped removal resolves to zero live targets.
//
// Grouped and sequence removal skip unresolvable entries with a logged
// warning instead of failing; see RemoveGroup and RemoveSequence.
package cascade
