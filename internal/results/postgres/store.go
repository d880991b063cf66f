// Package postgres persists run records to PostgreSQL through the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"github.com/trophiclab/foodweb/internal/results"
)

// Compile-time contract assertion.
var _ results.Store = (*Store)(nil)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/foodweb?sslmode=disable"
)

// sqlOpen is swapped by tests to stub the driver layer.
var sqlOpen = sql.Open

// Store keeps run records in one runs table as JSONB payloads keyed by
// run ID.
type Store struct {
	db *sql.DB
}

// NewStore connects with the provided DSN (falls back to defaultDSN),
// pings the server, and ensures the runs table exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sqlOpen(defaultDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
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
		`INSERT INTO runs(id,payload,created_at) VALUES($1,$2,$3)
		ON CONFLICT(id) DO UPDATE SET payload=EXCLUDED.payload`,
		rec.ID, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("upsert run %q: %w", rec.ID, err)
	}
	return nil
}

// GetRun fetches one record by ID.
func (s *Store) GetRun(ctx context.Context, id string) (results.RunRecord, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = $1`, id).Scan(&payload)
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
