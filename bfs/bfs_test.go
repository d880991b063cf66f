package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/trophiclab/foodweb/bfs"
	"github.com/trophiclab/foodweb/core"
)

// buildWeb returns a small reef web:
//
//	plankton → sardine → tuna → shark
//	plankton → mussel
//
// Edges run prey→predator.
func buildWeb(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{
		{"plankton", "sardine"},
		{"sardine", "tuna"},
		{"tuna", "shark"},
		{"plankton", "mussel"},
	} {
		if _, err := g.AddEdge(pair[0], pair[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", pair, err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph()
	if err := g2.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// out-of-range direction is a violation
	if _, err := bfs.BFS(g2, "A", bfs.WithDirection(bfs.Direction(99))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("bad direction: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleSpecies covers the trivial one-vertex graph.
func TestBFS_SingleSpecies(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("kelp"); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	res, err := bfs.BFS(g, "kelp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"kelp"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["kelp"]; d != 0 {
		t.Errorf("Depth[kelp] = %d; want 0", d)
	}
}

// TestBFS_Downstream walks prey→predator links, the default direction.
func TestBFS_Downstream(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "plankton")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Frontier at depth 1 is sorted: mussel before sardine.
	want := []string{"plankton", "mussel", "sardine", "tuna", "shark"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantDepth := map[string]int{"plankton": 0, "mussel": 1, "sardine": 1, "tuna": 2, "shark": 3}
	if !reflect.DeepEqual(res.Depth, wantDepth) {
		t.Errorf("Depth = %v; want %v", res.Depth, wantDepth)
	}
}

// TestBFS_Upstream walks predator→prey links: the diet closure.
func TestBFS_Upstream(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "shark", bfs.WithDirection(bfs.Upstream))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"shark", "tuna", "sardine", "plankton"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, reached := res.Depth["mussel"]; reached {
		t.Errorf("mussel is not in shark's diet closure but was reached")
	}
}

// TestBFS_BothWays ignores link direction entirely.
func TestBFS_BothWays(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "mussel", bfs.WithDirection(bfs.BothWays))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Everything is connected through plankton.
	if len(res.Order) != 5 {
		t.Fatalf("reached %d species; want 5 (order %v)", len(res.Order), res.Order)
	}
	if d := res.Depth["sardine"]; d != 2 {
		t.Errorf("Depth[sardine] = %d; want 2 (via plankton)", d)
	}
}

// TestBFS_Directionality checks that downstream cannot cross edges backwards.
func TestBFS_Directionality(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "tuna")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"tuna", "shark"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_MaxDepth truncates the walk below the limit.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "plankton", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"plankton", "mussel", "sardine"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_FilterNeighbor prunes individual links.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "plankton", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "plankton" && nbr == "sardine")
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"plankton", "mussel"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks checks hook ordering and the visit-abort contract.
func TestBFS_Hooks(t *testing.T) {
	g := buildWeb(t)

	var trace []string
	res, err := bfs.BFS(
		g, "sardine",
		bfs.WithOnEnqueue(func(id string, d int) { trace = append(trace, fmt.Sprintf("E:%s@%d", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { trace = append(trace, fmt.Sprintf("D:%s@%d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { trace = append(trace, fmt.Sprintf("V:%s@%d", id, d)); return nil }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"sardine", "tuna", "shark"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	wantTrace := []string{
		"E:sardine@0", "D:sardine@0", "V:sardine@0", "E:tuna@1",
		"D:tuna@1", "V:tuna@1", "E:shark@2",
		"D:shark@2", "V:shark@2",
	}
	if !reflect.DeepEqual(trace, wantTrace) {
		t.Errorf("trace = %v; want %v", trace, wantTrace)
	}

	// OnVisit error aborts and is wrapped.
	boom := errors.New("stop here")
	_, err = bfs.BFS(g, "sardine", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "tuna" {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestBFS_ContextCancel aborts mid-walk.
func TestBFS_ContextCancel(t *testing.T) {
	g := buildWeb(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "plankton", bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_PathTo reconstructs shortest hop paths.
func TestBFS_PathTo(t *testing.T) {
	g := buildWeb(t)
	res, err := bfs.BFS(g, "plankton")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := res.PathTo("shark")
	if err != nil {
		t.Fatalf("PathTo(shark): %v", err)
	}
	want := []string{"plankton", "sardine", "tuna", "shark"}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}

	if _, err := res.PathTo("kraken"); err == nil {
		t.Error("PathTo(kraken): want error for unreached species")
	}
}

// TestDirection_String covers the Stringer.
func TestDirection_String(t *testing.T) {
	cases := map[bfs.Direction]string{
		bfs.Downstream:     "downstream",
		bfs.Upstream:       "upstream",
		bfs.BothWays:       "both",
		bfs.Direction(200): "unknown",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q; want %q", d, got, want)
		}
	}
}
