// File: remove.go
// Role: Removal entry points (single, positional, grouped, sequence) and the
//       fixed-point cascade resolver they share.
//
// Determinism:
//   - Candidate scans iterate core.Vertices() (lex asc); Secondary order is
//     round-by-round, lexicographic within a round.
//
// Atomicity:
//   - Single removals resolve before any mutation; grouped removals resolve
//     the whole request first and then run one batch through the resolver.
package cascade

import (
	"errors"
	"fmt"
	"log/slog"
)

// Remove extinguishes one species directly and resolves the cascade.
//
// Steps:
//  1. Resolve id against the current working graph; fail with
//     ErrSpeciesNotFound before any mutation.
//  2. Delegate to the shared resolver with a single-element primary set.
//
// The returned Event is also appended to the run's event log.
func (s *Simulation) Remove(id string) (Event, error) {
	if !s.working.HasVertex(id) {
		return Event{}, fmt.Errorf("%w: %q", ErrSpeciesNotFound, id)
	}

	return s.execute([]string{id}), nil
}

// RemoveIndex extinguishes the species at position i of the current working
// graph's sorted species list. Positions shift as species go extinct, so the
// index is resolved here, once, and tracked by ID thereafter.
//
// Errors: ErrIndexOutOfRange.
func (s *Simulation) RemoveIndex(i int) (Event, error) {
	ids := s.working.Vertices()
	if i < 0 || i >= len(ids) {
		return Event{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(ids))
	}

	return s.execute([]string{ids[i]}), nil
}

// RemoveGroup extinguishes several species simultaneously: all of them are
// primaries of one Event and one cascade.
//
// Unresolvable entries (already extinct, never existed) are skipped with a
// warning instead of aborting the batch, so random samples that hit an
// extinct species keep working. Duplicates are collapsed silently.
//
// Errors: ErrNoValidTargets when nothing in the request resolves; the
// working graph is untouched in that case.
func (s *Simulation) RemoveGroup(ids ...string) (Event, error) {
	valid := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !s.working.HasVertex(id) {
			s.log.Warn("skipping unresolvable species in group removal",
				slog.String("species", id))
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		valid = append(valid, id)
	}

	if len(valid) == 0 {
		return Event{}, ErrNoValidTargets
	}

	return s.execute(valid), nil
}

// RemoveGroupByIndex is RemoveGroup with positional arguments, resolved
// against the current sorted species list before any mutation. Out-of-range
// entries are skipped with a warning, mirroring RemoveGroup's tolerance.
//
// Errors: ErrNoValidTargets.
func (s *Simulation) RemoveGroupByIndex(idxs ...int) (Event, error) {
	ids := s.working.Vertices()
	resolved := make([]string, 0, len(idxs))
	for _, i := range idxs {
		if i < 0 || i >= len(ids) {
			s.log.Warn("skipping out-of-range index in group removal",
				slog.Int("index", i), slog.Int("species", len(ids)))
			continue
		}
		resolved = append(resolved, ids[i])
	}

	if len(resolved) == 0 {
		return Event{}, ErrNoValidTargets
	}

	return s.RemoveGroup(resolved...)
}

// RemoveSequence applies single removals in the given order, each with its
// own Event and cascade. Entries that no longer resolve (for instance, a
// species that an earlier cascade already extinguished) are skipped with a
// warning. Returns the Events of the removals that ran.
func (s *Simulation) RemoveSequence(ids ...string) ([]Event, error) {
	events := make([]Event, 0, len(ids))
	for _, id := range ids {
		ev, err := s.Remove(id)
		if err != nil {
			if errors.Is(err, ErrSpeciesNotFound) {
				s.log.Warn("skipping unresolvable species in sequence removal",
					slog.String("species", id))
				continue
			}

			return events, err
		}
		events = append(events, ev)
	}

	return events, nil
}

// execute runs one removal operation: primaries, fixed-point cascade,
// affected marking, history snapshot, event record. Callers have already
// resolved primaries against the working graph.
func (s *Simulation) execute(primaries []string) Event {
	// touched accumulates every species that lost an edge this operation:
	// the neighbors (both directions) of each deleted vertex, captured at
	// deletion time.
	touched := make(map[string]struct{})

	// 1. Mark primaries and note their neighborhoods before the batch delete.
	for _, id := range primaries {
		s.noteNeighbors(id, touched)
		s.status[id] = StatusPrimaryExtinct
	}

	// 2. Batch-delete all primaries. IDs are stable handles, so deletion
	//    order inside the batch cannot invalidate the rest of it.
	for _, id := range primaries {
		_ = s.working.RemoveVertex(id) // resolved above; cannot miss
	}

	// 3. Fixed point: delete every starved non-basal species, rescan, repeat.
	//    Terminates in ≤ |V| rounds since each non-empty round shrinks the graph.
	var secondary []string
	for {
		candidates := s.scanStarved()
		if len(candidates) == 0 {
			break
		}
		for _, id := range candidates {
			s.noteNeighbors(id, touched)
			s.status[id] = StatusSecondaryExtinct
		}
		for _, id := range candidates {
			_ = s.working.RemoveVertex(id)
		}
		secondary = append(secondary, candidates...)
	}

	// 4. Affected: survivors that lost at least one edge. Extinct species in
	//    touched keep their extinction status; prior affected stay affected.
	for id := range touched {
		if s.working.HasVertex(id) && s.status[id] == StatusAlive {
			s.status[id] = StatusAffected
		}
	}

	// 5. Snapshot the status table and append the operation record.
	s.step++
	s.history = append(s.history, copyStates(s.status))

	ev := Event{
		Step:      s.step,
		Primary:   append([]string(nil), primaries...),
		Secondary: secondary,
		Total:     len(primaries) + len(secondary),
		Remaining: s.working.VertexCount(),
	}
	s.events = append(s.events, ev)

	return copyEvent(ev)
}

// scanStarved returns, in lexicographic order, every species of the working
// graph that is non-basal and has in-degree 0.
func (s *Simulation) scanStarved() []string {
	var out []string
	for _, id := range s.working.Vertices() {
		if _, isBasal := s.basal[id]; isBasal {
			continue
		}
		deg, _ := s.working.InDegree(id) // id comes from Vertices(); cannot miss
		if deg == 0 {
			out = append(out, id)
		}
	}

	return out
}

// noteNeighbors records both trophic directions of id into touched. Must run
// before id is deleted from the working graph.
func (s *Simulation) noteNeighbors(id string, touched map[string]struct{}) {
	prey, _ := s.working.PreyOf(id)
	for _, p := range prey {
		touched[p] = struct{}{}
	}
	predators, _ := s.working.PredatorsOf(id)
	for _, p := range predators {
		touched[p] = struct{}{}
	}
}
