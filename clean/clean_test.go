package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophiclab/foodweb/clean"
	"github.com/trophiclab/foodweb/core"
)

func TestDedupe_NilGraph(t *testing.T) {
	_, _, err := clean.Dedupe(nil)
	require.ErrorIs(t, err, clean.ErrGraphNil)
}

func TestDedupe_CollapsesParallelLinks(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops(), core.WithParallelEdges())
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge("alga", "krill")
		require.NoError(t, err)
	}
	_, err := g.AddEdge("krill", "whale")
	require.NoError(t, err)

	out, removed, err := clean.Dedupe(g)
	require.NoError(t, err)

	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, out.EdgeCount())
	assert.True(t, out.HasEdge("alga", "krill"))
	assert.True(t, out.HasEdge("krill", "whale"))

	// Raw graph untouched.
	assert.Equal(t, 4, g.EdgeCount())
}

func TestDedupe_KeepsFirstRecord(t *testing.T) {
	g := core.NewGraph(core.WithParallelEdges())
	first, err := g.AddEdge("moss", "vole")
	require.NoError(t, err)
	_, err = g.AddEdge("moss", "vole")
	require.NoError(t, err)

	out, removed, err := clean.Dedupe(g)
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	edges := out.Edges()
	require.Len(t, edges, 1)
	// The surviving link carries the first record's endpoints; the new
	// graph reissues IDs from e1.
	firstEdge, err := g.GetEdge(first)
	require.NoError(t, err)
	assert.Equal(t, firstEdge.From, edges[0].From)
	assert.Equal(t, firstEdge.To, edges[0].To)
	assert.Equal(t, "e1", edges[0].ID)
}

func TestDedupe_PreservesSelfLoops(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops(), core.WithParallelEdges())
	_, err := g.AddEdge("crab", "crab")
	require.NoError(t, err)
	_, err = g.AddEdge("crab", "crab")
	require.NoError(t, err)

	out, removed, err := clean.Dedupe(g)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, out.EdgeCount())
	assert.True(t, out.HasEdge("crab", "crab"))
}

func TestDedupe_KeepsIsolatedSpecies(t *testing.T) {
	g := core.NewGraph(core.WithParallelEdges())
	require.NoError(t, g.AddVertex("hermit"))
	_, err := g.AddEdge("alga", "krill")
	require.NoError(t, err)

	out, removed, err := clean.Dedupe(g)
	require.NoError(t, err)

	assert.Zero(t, removed)
	assert.Equal(t, []string{"alga", "hermit", "krill"}, out.Vertices())
}

func TestDedupe_EmptyGraph(t *testing.T) {
	out, removed, err := clean.Dedupe(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Zero(t, out.VertexCount())
}

func TestDedupe_ResultRejectsNewParallels(t *testing.T) {
	g := core.NewGraph(core.WithParallelEdges())
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)

	out, _, err := clean.Dedupe(g)
	require.NoError(t, err)

	_, err = out.AddEdge("a", "b")
	require.ErrorIs(t, err, core.ErrParallelEdgeNotAllowed)
}
