// Package sqlite persists run records to a single-file SQLite database
// through the cgo-free modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/trophiclab/foodweb/internal/results"
)

// Compile-time contract assertion.
var _ results.Store = (*Store)(nil)

// Store keeps run records in one runs table as JSON payloads keyed by
// run ID.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at path and ensures
// the runs table exists. An empty path defaults to foodweb.db in the
// working directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "foodweb.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// created_at holds Unix nanoseconds; the driver's textual time
	// encoding does not collate chronologically.
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveRun upserts the record. Replacement keeps the original
// created_at, so list order reflects the first save.
func (s *Store) SaveRun(ctx context.Context, rec results.RunRecord) error {
	if rec.ID == "" {
		return results.ErrEmptyRunID
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode run %q: %w", rec.ID, err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(id,payload,created_at) VALUES(?,?,?)
		ON CONFLICT(id) DO UPDATE SET payload=excluded.payload`,
		rec.ID, payload, time.Now().UTC().UnixNano()); err != nil {
		return fmt.Errorf("upsert run %q: %w", rec.ID, err)
	}
	return nil
}

// GetRun fetches one record by ID.
func (s *Store) GetRun(ctx context.Context, id string) (results.RunRecord, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return results.RunRecord{}, fmt.Errorf("%w: %q", results.ErrRunNotFound, id)
	}
	if err != nil {
		return results.RunRecord{}, fmt.Errorf("select run %q: %w", id, err)
	}
	var rec results.RunRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return results.RunRecord{}, fmt.Errorf("decode run %q: %w", id, err)
	}
	return rec, nil
}

// ListRuns returns every record, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]results.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []results.RunRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		var rec results.RunRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode run: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying handle for integration test hooks.
func (s *Store) DB() *sql.DB { return s.db }
