// File: simulation.go
// Role: Simulation lifecycle (New/Reset) and read-only state queries:
//       robustness, diet loss, statuses, history, events, summary.
//
// Determinism:
//   - All enumerations ride on core.Vertices() (lex asc).
//
// Concurrency:
//   - A Simulation belongs to one goroutine; see doc.go.
package cascade

import (
	"log/slog"
	"math"

	"github.com/trophiclab/foodweb/core"
)

// Simulation drives extinction cascades over one food web.
//
// It owns three pieces of state: the immutable snapshot of the original
// graph, the mutable working graph that removals shrink, and the per-species
// status table with its append-only history.
type Simulation struct {
	snapshot *core.Graph // original network; never mutated after New
	working  *core.Graph // current surviving network

	basal     map[string]struct{} // species with in-degree 0 at load time
	origInDeg map[string]int      // snapshot in-degree per species, for diet loss

	status  map[string]Status   // current status per species
	history []map[string]Status // one deep snapshot per completed operation
	events  []Event             // append-only operation log
	step    int                 // completed operations

	log *slog.Logger
}

// New snapshots g and returns a ready Simulation with every species alive.
//
// The caller's graph is deep-copied; later mutations of g do not leak into
// the run. Basal species are derived here, once, from the snapshot.
//
// Errors: ErrNilGraph.
// Complexity: O(V + E) for the clones plus O(V·k) for the degree pass.
func New(g *core.Graph, opts ...Option) (*Simulation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &Simulation{
		snapshot: g.Clone(),
		log:      o.Logger,
	}
	s.bootstrap()

	return s, nil
}

// bootstrap (re)derives all mutable state from the immutable snapshot.
// Shared by New and Reset, so Reset is exact by construction.
func (s *Simulation) bootstrap() {
	s.working = s.snapshot.Clone()

	n := s.snapshot.VertexCount()
	s.basal = make(map[string]struct{})
	s.origInDeg = make(map[string]int, n)
	s.status = make(map[string]Status, n)

	for _, id := range s.snapshot.Vertices() {
		deg, _ := s.snapshot.InDegree(id) // id comes from Vertices(); cannot miss
		s.origInDeg[id] = deg
		if deg == 0 {
			s.basal[id] = struct{}{}
		}
		s.status[id] = StatusAlive
	}

	s.history = nil
	s.events = nil
	s.step = 0
}

// Reset restores the Simulation to its exact post-construction state: fresh
// working graph, all species alive, empty history and event log. The basal
// set is re-derived from the immutable snapshot, which is idempotent.
func (s *Simulation) Reset() {
	s.bootstrap()
}

// Robustness returns the fraction of original species still alive:
// |working| / |original|, and 0 for an originally empty network.
func (s *Simulation) Robustness() float64 {
	orig := s.snapshot.VertexCount()
	if orig == 0 {
		return 0
	}

	return float64(s.working.VertexCount()) / float64(orig)
}

// DietLoss reports, for every currently-alive non-basal species, the
// fraction of its original diet lost: 1 − (current in-degree / original
// in-degree), rounded to 3 decimal places.
//
// Basal species are excluded entirely (no diet to lose by definition).
// A non-basal species with original in-degree 0 cannot occur with the basal
// rule above, but if the tables disagree the loss reports as 0.0 instead of
// dividing by zero.
func (s *Simulation) DietLoss() map[string]float64 {
	out := make(map[string]float64)
	for _, id := range s.working.Vertices() {
		if _, isBasal := s.basal[id]; isBasal {
			continue
		}
		orig := s.origInDeg[id]
		if orig == 0 {
			out[id] = 0.0
			continue
		}
		cur, _ := s.working.InDegree(id) // id comes from Vertices(); cannot miss
		loss := 1.0 - float64(cur)/float64(orig)
		out[id] = math.Round(loss*1000) / 1000
	}

	return out
}

// StatusOf returns the current status of id and whether the species is known
// to this run at all.
func (s *Simulation) StatusOf(id string) (Status, bool) {
	st, ok := s.status[id]

	return st, ok
}

// States returns a copy of the current status table.
func (s *Simulation) States() map[string]Status {
	return copyStates(s.status)
}

// History returns deep copies of the per-operation status snapshots, oldest
// first. One entry per completed removal operation.
func (s *Simulation) History() []map[string]Status {
	out := make([]map[string]Status, len(s.history))
	for i, snap := range s.history {
		out[i] = copyStates(snap)
	}

	return out
}

// Events returns a copy of the append-only operation log, oldest first.
func (s *Simulation) Events() []Event {
	out := make([]Event, len(s.events))
	for i, ev := range s.events {
		out[i] = copyEvent(ev)
	}

	return out
}

// Alive returns the currently surviving species, sorted lexicographically.
func (s *Simulation) Alive() []string {
	return s.working.Vertices()
}

// Basal returns the basal-species set, sorted lexicographically. Membership
// is invariant for the lifetime of the run.
func (s *Simulation) Basal() []string {
	out := make([]string, 0, len(s.basal))
	for _, id := range s.snapshot.Vertices() {
		if _, ok := s.basal[id]; ok {
			out = append(out, id)
		}
	}

	return out
}

// IsBasal reports whether id belongs to the basal set.
func (s *Simulation) IsBasal(id string) bool {
	_, ok := s.basal[id]

	return ok
}

// Working returns a deep copy of the current working graph. The vulnerability
// ranker and the attack simulator build their scratch runs from this.
func (s *Simulation) Working() *core.Graph {
	return s.working.Clone()
}

// Original returns a deep copy of the immutable snapshot.
func (s *Simulation) Original() *core.Graph {
	return s.snapshot.Clone()
}

// Summary aggregates the run so far.
func (s *Simulation) Summary() Summary {
	sum := Summary{
		OriginalSpecies: s.snapshot.VertexCount(),
		AliveSpecies:    s.working.VertexCount(),
		BasalSpecies:    len(s.basal),
		Operations:      s.step,
		Robustness:      s.Robustness(),
	}
	for _, st := range s.status {
		switch st {
		case StatusPrimaryExtinct:
			sum.PrimaryExtinct++
		case StatusSecondaryExtinct:
			sum.SecondaryExtinct++
		case StatusAffected:
			sum.Affected++
		case StatusAlive:
			// counted via AliveSpecies
		}
	}

	return sum
}

// copyStates deep-copies one status table.
func copyStates(src map[string]Status) map[string]Status {
	dst := make(map[string]Status, len(src))
	for id, st := range src {
		dst[id] = st
	}

	return dst
}

// copyEvent deep-copies an Event so callers cannot bend the append-only log.
func copyEvent(ev Event) Event {
	cp := ev
	cp.Primary = append([]string(nil), ev.Primary...)
	cp.Secondary = append([]string(nil), ev.Secondary...)

	return cp
}
