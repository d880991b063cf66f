// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for foodweb/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).
package core_test

import (
	"errors"
	"testing"

	"github.com/trophiclab/foodweb/core"
)

// Common species IDs used across core tests.
const (
	SpeciesEmpty = ""

	SpeciesAlga   = "alga"
	SpeciesKrill  = "krill"
	SpeciesFish   = "fish"
	SpeciesSeal   = "seal"
	SpeciesOrca   = "orca"
	SpeciesUrchin = "urchin"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NAtomicEdgeIDs    = 100
	NConcurrentAdds   = 200
	NConcurrentRounds = 100

	NReaders = 50
	NCloners = 20
)

// NewGraphRaw returns a Graph configured the way the loader builds raw input:
// self-loops and parallel edges both permitted.
func NewGraphRaw() *core.Graph {
	return core.NewGraph(core.WithSelfLoops(), core.WithParallelEdges())
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: condition is false", op)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d, want %d", op, got, want)
}

// MustNoErrorsFromChan drains a closed error channel and fails on the first
// error found.
func MustNoErrorsFromChan(t *testing.T, errc <-chan error, op string) {
	t.Helper()

	for err := range errc {
		t.Fatalf("%s: %v", op, err)
	}
}

// MustEqualStrings fails the test if got and want differ in length or content.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", op, got, want)
		}
	}
}
