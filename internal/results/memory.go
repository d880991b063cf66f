package results

import (
	"context"
	"fmt"
	"sync"
)

// Compile-time contract assertion.
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps run records in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[string]RunRecord
	order []string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{runs: make(map[string]RunRecord)}
}

// SaveRun inserts or replaces the record; replacement keeps the
// original list position.
func (s *MemoryStore) SaveRun(ctx context.Context, rec RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.ID == "" {
		return ErrEmptyRunID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[rec.ID]; !ok {
		s.order = append(s.order, rec.ID)
	}
	s.runs[rec.ID] = rec
	return nil
}

// GetRun fetches a record by ID.
func (s *MemoryStore) GetRun(ctx context.Context, id string) (RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return RunRecord{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.runs[id]
	if !ok {
		return RunRecord{}, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}
	return rec, nil
}

// ListRuns returns records in first-save order.
func (s *MemoryStore) ListRuns(ctx context.Context) ([]RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil, nil
	}
	out := make([]RunRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.runs[id])
	}
	return out, nil
}

// Close is a no-op; the store holds no external resources.
func (s *MemoryStore) Close() error { return nil }
