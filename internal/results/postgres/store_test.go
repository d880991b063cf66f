package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophiclab/foodweb/internal/results"
)

// The tests below run the store against a stub database/sql driver that
// replays an in-memory runs table, so no live server is needed.

var stubSeq atomic.Int64

type stubDriver struct {
	conn    *stubConn
	openErr error
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.conn, nil
}

type stubConn struct {
	execs   []string
	ids     []string
	rows    map[string][]byte
	failDDL bool
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return &stubStmt{conn: c, query: query}, nil
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not stubbed")
}

type stubStmt struct {
	conn  *stubConn
	query string
}

func (s *stubStmt) Close() error { return nil }

func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	c := s.conn
	c.execs = append(c.execs, s.query)
	switch {
	case strings.HasPrefix(s.query, "CREATE TABLE"):
		if c.failDDL {
			return nil, errors.New("ddl refused")
		}
		return driver.RowsAffected(0), nil
	case strings.HasPrefix(s.query, "INSERT INTO runs"):
		id, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected id arg %T", args[0])
		}
		payload, ok := args[1].([]byte)
		if !ok {
			return nil, fmt.Errorf("unexpected payload arg %T", args[1])
		}
		if _, exists := c.rows[id]; !exists {
			c.ids = append(c.ids, id)
		}
		c.rows[id] = append([]byte(nil), payload...)
		return driver.RowsAffected(1), nil
	default:
		return nil, fmt.Errorf("unexpected exec: %s", s.query)
	}
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	c := s.conn
	switch {
	case strings.Contains(s.query, "WHERE id"):
		id, _ := args[0].(string)
		payload, ok := c.rows[id]
		if !ok {
			return &stubRows{}, nil
		}
		return &stubRows{vals: [][]driver.Value{{payload}}}, nil
	case strings.Contains(s.query, "ORDER BY"):
		rows := &stubRows{}
		for _, id := range c.ids {
			rows.vals = append(rows.vals, []driver.Value{c.rows[id]})
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unexpected query: %s", s.query)
	}
}

type stubRows struct {
	vals [][]driver.Value
	idx  int
}

func (r *stubRows) Columns() []string { return []string{"payload"} }

func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.vals) {
		return io.EOF
	}
	copy(dest, r.vals[r.idx])
	r.idx++
	return nil
}

func newStubDB(t *testing.T, conn *stubConn) *sql.DB {
	t.Helper()
	name := fmt.Sprintf("stubpg%d", stubSeq.Add(1))
	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	require.NoError(t, err)
	return db
}

func overrideOpen(t *testing.T, fn func(driverName, dsn string) (*sql.DB, error)) {
	t.Helper()
	prev := sqlOpen
	sqlOpen = fn
	t.Cleanup(func() { sqlOpen = prev })
}

func openStubStore(t *testing.T) (*Store, *stubConn) {
	t.Helper()
	conn := &stubConn{rows: map[string][]byte{}}
	db := newStubDB(t, conn)
	overrideOpen(t, func(_, _ string) (*sql.DB, error) { return db, nil })

	store, err := NewStore(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, conn
}

func sampleRecord(id string) results.RunRecord {
	return results.RunRecord{
		ID:             id,
		Web:            "chesapeake",
		Source:         "webs/chesapeake.graphml",
		StartedAt:      time.Date(2026, 8, 20, 11, 15, 0, 0, time.UTC),
		FinishedAt:     time.Date(2026, 8, 20, 11, 15, 3, 0, time.UTC),
		Species:        33,
		Links:          72,
		BasalSpecies:   5,
		DuplicateLinks: 1,
		TopSpecies:     "phytoplankton",
		TopCascade:     8,
		Robustness:     0.758,
		Events: []results.RunEvent{{
			Step:    1,
			Primary: []string{"phytoplankton"},
			Secondary: []string{
				"bay anchovy", "ctenophores", "menhaden", "sea nettles",
				"spot", "white perch", "zooplankton",
			},
			Total:     8,
			Remaining: 25,
		}},
		TopRanking: []results.RunScore{
			{Species: "phytoplankton", Cascade: 8},
			{Species: "zooplankton", Cascade: 4},
		},
	}
}

func requireSameRecord(t *testing.T, want, got results.RunRecord) {
	t.Helper()
	require.True(t, got.StartedAt.Equal(want.StartedAt), "started_at drifted")
	require.True(t, got.FinishedAt.Equal(want.FinishedAt), "finished_at drifted")
	got.StartedAt, got.FinishedAt = want.StartedAt, want.FinishedAt
	require.Equal(t, want, got)
}

// TestNewStore_EnsuresRunsTable applies the DDL on startup and defaults
// the DSN when none is configured.
func TestNewStore_EnsuresRunsTable(t *testing.T) {
	conn := &stubConn{rows: map[string][]byte{}}
	db := newStubDB(t, conn)

	var gotDSN string
	overrideOpen(t, func(_, dsn string) (*sql.DB, error) {
		gotDSN = dsn
		return db, nil
	})

	store, err := NewStore(context.Background(), "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.Equal(t, defaultDSN, gotDSN)
	require.NotEmpty(t, conn.execs)
	assert.Contains(t, conn.execs[0], "CREATE TABLE IF NOT EXISTS runs")
}

// TestStore_SaveGetRoundTrip returns the record saved and uses an
// upsert so repeated IDs cannot conflict.
func TestStore_SaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, conn := openStubStore(t)

	rec := sampleRecord("run-1")
	require.NoError(t, store.SaveRun(ctx, rec))

	var sawUpsert bool
	for _, q := range conn.execs {
		if strings.Contains(q, "ON CONFLICT(id) DO UPDATE") {
			sawUpsert = true
		}
	}
	assert.True(t, sawUpsert, "expected an upsert statement")

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	requireSameRecord(t, rec, got)
}

// TestStore_GetMissing reports ErrRunNotFound for unknown IDs.
func TestStore_GetMissing(t *testing.T) {
	store, _ := openStubStore(t)

	_, err := store.GetRun(context.Background(), "ghost")
	require.ErrorIs(t, err, results.ErrRunNotFound)
}

// TestStore_SaveEmptyID rejects records without an ID before touching
// the database.
func TestStore_SaveEmptyID(t *testing.T) {
	store, conn := openStubStore(t)

	err := store.SaveRun(context.Background(), results.RunRecord{Web: "x"})
	require.ErrorIs(t, err, results.ErrEmptyRunID)
	for _, q := range conn.execs {
		assert.NotContains(t, q, "INSERT")
	}
}

// TestStore_ListOrder lists in first-save order; an upsert keeps the
// original position while replacing the payload.
func TestStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := openStubStore(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.SaveRun(ctx, sampleRecord(id)))
	}

	updated := sampleRecord("a")
	updated.TopCascade = 11
	require.NoError(t, store.SaveRun(ctx, updated))

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	assert.Equal(t, 11, runs[0].TopCascade)
}

// TestStore_ListEmpty yields no records for a fresh table.
func TestStore_ListEmpty(t *testing.T) {
	store, _ := openStubStore(t)

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

// TestNewStore_OpenError surfaces the dial failure.
func TestNewStore_OpenError(t *testing.T) {
	overrideOpen(t, func(_, _ string) (*sql.DB, error) {
		return nil, errors.New("resolver down")
	})

	_, err := NewStore(context.Background(), "postgres://example/foodweb")
	require.ErrorContains(t, err, "open postgres")
}

// TestNewStore_PingError surfaces an unreachable server.
func TestNewStore_PingError(t *testing.T) {
	name := fmt.Sprintf("stubpg%d", stubSeq.Add(1))
	sql.Register(name, &stubDriver{openErr: errors.New("connection refused")})
	db, err := sql.Open(name, "stub")
	require.NoError(t, err)
	overrideOpen(t, func(_, _ string) (*sql.DB, error) { return db, nil })

	_, err = NewStore(context.Background(), "postgres://example/foodweb")
	require.ErrorContains(t, err, "ping postgres")
}

// TestNewStore_DDLError surfaces a refused CREATE TABLE.
func TestNewStore_DDLError(t *testing.T) {
	conn := &stubConn{rows: map[string][]byte{}, failDDL: true}
	db := newStubDB(t, conn)
	overrideOpen(t, func(_, _ string) (*sql.DB, error) { return db, nil })

	_, err := NewStore(context.Background(), "postgres://example/foodweb")
	require.ErrorContains(t, err, "create runs table")
}
