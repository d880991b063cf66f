// Package results defines the persistent record of completed analyses
// and the store contract its backends implement.
//
// Two SQL backends live in the sqlite and postgres subpackages; the
// in-memory store here backs the "memory" driver and the test suites of
// everything layered on a Store. All backends keep records as JSON
// payloads keyed by run ID, so the schema never chases the record
// shape.
package results

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by every backend.
var (
	// ErrRunNotFound is returned by GetRun for an unknown run ID.
	ErrRunNotFound = errors.New("results: run not found")

	// ErrEmptyRunID is returned by SaveRun when the record carries no ID.
	ErrEmptyRunID = errors.New("results: run id is empty")
)

// RunEvent is one removal operation of a stored run, flattened from the
// engine's event type so the record stays self-describing JSON.
type RunEvent struct {
	Step      int      `json:"step"`
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary,omitempty"`
	Total     int      `json:"total"`
	Remaining int      `json:"remaining"`
}

// RunScore is one vulnerability-ranking row of a stored run.
type RunScore struct {
	Species string `json:"species"`
	Cascade int    `json:"cascade"`
}

// RunRecord captures the outcome of one analyzed food-web file.
type RunRecord struct {
	// ID is the run's UUID, minted by the caller.
	ID string `json:"id"`

	// Web is the web's display name, usually the input file stem.
	Web string `json:"web"`

	// Source is the path the web was loaded from.
	Source string `json:"source"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Species and Links count the cleaned web; DuplicateLinks counts the
	// parallel records dropped during cleaning.
	Species        int `json:"species"`
	Links          int `json:"links"`
	BasalSpecies   int `json:"basal_species"`
	DuplicateLinks int `json:"duplicate_links"`

	// TopSpecies is the most vulnerable species, TopCascade the size of
	// the cascade its removal triggers, and Robustness the fraction of
	// the web surviving that case study.
	TopSpecies string  `json:"top_species"`
	TopCascade int     `json:"top_cascade"`
	Robustness float64 `json:"robustness"`

	// Events replays the run's removal operations; TopRanking keeps the
	// leading vulnerability scores.
	Events     []RunEvent `json:"events,omitempty"`
	TopRanking []RunScore `json:"top_ranking,omitempty"`
}

// Store persists run records.
type Store interface {
	// SaveRun inserts the record, replacing any earlier record with the
	// same ID.
	SaveRun(ctx context.Context, rec RunRecord) error

	// GetRun fetches a record by ID; ErrRunNotFound on a miss.
	GetRun(ctx context.Context, id string) (RunRecord, error)

	// ListRuns returns every record, oldest first.
	ListRuns(ctx context.Context) ([]RunRecord, error)

	// Close releases the backing resources.
	Close() error
}
