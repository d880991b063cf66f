// Package pool provides a fixed-size worker pool that fans independent
// jobs out over a bounded queue and collects results in input order.
//
// The vulnerability ranker, the attack-curve sampler and the ingest
// driver all evaluate many isolated simulations; they differ only in
// the payload type, so the pool is generic over payload and result.
package pool

import (
	"context"
	"runtime"
	"sync"
)

// job is the unit of work dispatched to a worker.
type job[T any] struct {
	index   int
	payload T
}

// mapper owns the queue, the workers and the slot-per-job result slice
// for a single Map call.
type mapper[T, R any] struct {
	queue   chan job[T]
	process func(ctx context.Context, t T) (R, error)
	results []R

	cancel  context.CancelFunc
	errOnce sync.Once
	err     error
	wg      sync.WaitGroup
}

// Map applies fn to every item using at most workers goroutines and
// returns the results in input order.
//
// The first error cancels all outstanding work and is returned alone;
// partial results are discarded. Cancellation of ctx is honored both
// between dispatches and between jobs, and surfaces as ctx.Err().
// workers < 1 selects runtime.NumCPU().
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := &mapper[T, R]{
		queue:   make(chan job[T], workers),
		process: fn,
		results: make([]R, len(items)),
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.run(ctx)
		}()
	}

dispatch:
	for i, it := range items {
		select {
		case m.queue <- job[T]{index: i, payload: it}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(m.queue)
	m.wg.Wait()

	if m.err != nil {
		return nil, m.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.results, nil
}

func (m *mapper[T, R]) run(ctx context.Context) {
	for {
		select {
		case j, ok := <-m.queue:
			if !ok {
				return
			}
			r, err := m.process(ctx, j.payload)
			if err != nil {
				m.fail(err)
				return
			}
			m.results[j.index] = r
		case <-ctx.Done():
			return
		}
	}
}

// fail records the first error and cancels the shared context so the
// dispatcher and the remaining workers unwind promptly.
func (m *mapper[T, R]) fail(err error) {
	m.errOnce.Do(func() {
		m.err = err
		m.cancel()
	})
}
