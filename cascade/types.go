// Package cascade types: statuses, events, summaries, options, and error
// definitions for the extinction-cascade engine.
package cascade

import (
	"errors"
	"log/slog"
)

// Sentinel errors for cascade execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to New.
	ErrNilGraph = errors.New("cascade: graph is nil")

	// ErrSpeciesNotFound is returned when a removal names a species absent
	// from the current working graph (already extinct or never existed).
	ErrSpeciesNotFound = errors.New("cascade: species not found")

	// ErrIndexOutOfRange is returned when a positional index falls outside
	// the current working graph's valid range.
	ErrIndexOutOfRange = errors.New("cascade: index out of range")

	// ErrNoValidTargets is returned when a grouped removal resolves to zero
	// live targets; no mutation has happened.
	ErrNoValidTargets = errors.New("cascade: no valid targets in group")
)

// Status is the lifecycle state of one species within a simulation run.
//
// Transitions are monotonic: StatusAlive → {StatusPrimaryExtinct,
// StatusSecondaryExtinct, StatusAffected}; StatusAffected may still become
// extinct; extinct states never revert except via Reset.
type Status uint8

const (
	// StatusAlive marks a species present in the working graph and untouched
	// by any removal so far.
	StatusAlive Status = iota

	// StatusPrimaryExtinct marks a species removed directly by request.
	StatusPrimaryExtinct

	// StatusSecondaryExtinct marks a species removed because its in-degree
	// dropped to zero as a cascading consequence.
	StatusSecondaryExtinct

	// StatusAffected marks a survivor that lost at least one edge during a
	// removal operation. Diagnostic only; carries no extinction consequence.
	StatusAffected
)

// String returns the stable textual tag used in reports and logs.
func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusPrimaryExtinct:
		return "primary-extinct"
	case StatusSecondaryExtinct:
		return "secondary-extinct"
	case StatusAffected:
		return "affected"
	default:
		return "unknown"
	}
}

// Event is the immutable record of one removal operation.
type Event struct {
	// Step is the 1-based sequence number of the operation within the run.
	Step int

	// Primary lists the species removed directly by request, in the order
	// they were resolved.
	Primary []string

	// Secondary lists the cascading extinctions in cascade order: round by
	// round, lexicographic within a round.
	Secondary []string

	// Total is len(Primary) + len(Secondary).
	Total int

	// Remaining is the working-graph species count after the operation.
	Remaining int
}

// Summary aggregates a run's counters; see Simulation.Summary.
type Summary struct {
	OriginalSpecies  int     // species in the snapshot
	AliveSpecies     int     // species currently in the working graph
	BasalSpecies     int     // basal-set size (invariant for the run)
	PrimaryExtinct   int     // total primaries across all operations
	SecondaryExtinct int     // total secondaries across all operations
	Affected         int     // survivors currently marked affected
	Operations       int     // completed removal operations
	Robustness       float64 // AliveSpecies / OriginalSpecies
}

// Option configures a Simulation via functional arguments.
type Option func(*Options)

// Options holds parameters customizing engine behavior.
type Options struct {
	// Logger receives recoverable-warning records (skipped group members,
	// unresolvable sequence entries). Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options with the process-default logger.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithLogger routes the engine's warnings to a specific logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
