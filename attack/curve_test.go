package attack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophiclab/foodweb/attack"
	"github.com/trophiclab/foodweb/core"
)

// buildChain returns A→B→C→D (each species eaten by the next).
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	return g
}

func TestDefaultFractions(t *testing.T) {
	fs := attack.DefaultFractions()
	require.Len(t, fs, 21)
	assert.Equal(t, 0.0, fs[0])
	assert.Equal(t, 1.0, fs[20])
	assert.InDelta(t, 0.05, fs[1], 1e-12)
	assert.InDelta(t, 0.55, fs[11], 1e-12)
}

func TestCurves_NilGraph(t *testing.T) {
	_, err := attack.Random(nil)
	require.ErrorIs(t, err, attack.ErrGraphNil)

	_, err = attack.Targeted(nil, []string{"A"})
	require.ErrorIs(t, err, attack.ErrGraphNil)
}

func TestTargeted_EmptyOrder(t *testing.T) {
	_, err := attack.Targeted(buildChain(t), nil)
	require.ErrorIs(t, err, attack.ErrEmptyOrder)
}

func TestTargeted_Chain(t *testing.T) {
	// The chain collapses entirely once its producer goes, so every
	// non-zero fraction flattens the curve to 0.
	curve, err := attack.Targeted(buildChain(t), []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	require.Len(t, curve.Fractions, 21)
	require.Len(t, curve.Robustness, 21)
	assert.Equal(t, 1.0, curve.Robustness[0])
	for i := 1; i < len(curve.Robustness); i++ {
		assert.Equal(t, 0.0, curve.Robustness[i], "fraction %v", curve.Fractions[i])
	}
}

func TestTargeted_PartialSurvival(t *testing.T) {
	// X eats P1 and P2: losing one producer leaves X fed.
	g := core.NewGraph()
	_, err := g.AddEdge("P1", "X")
	require.NoError(t, err)
	_, err = g.AddEdge("P2", "X")
	require.NoError(t, err)

	curve, err := attack.Targeted(g, []string{"P1", "P2", "X"},
		attack.WithFractions([]float64{0, 1.0 / 3, 2.0 / 3, 1}))
	require.NoError(t, err)

	require.Len(t, curve.Robustness, 4)
	assert.Equal(t, 1.0, curve.Robustness[0])
	assert.InDelta(t, 2.0/3, curve.Robustness[1], 1e-9)
	assert.Equal(t, 0.0, curve.Robustness[2])
	assert.Equal(t, 0.0, curve.Robustness[3])
}

func TestTargeted_ShortOrderUsedInFull(t *testing.T) {
	// An order covering only the producer still kills the whole chain.
	curve, err := attack.Targeted(buildChain(t), []string{"A"},
		attack.WithFractions([]float64{1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, curve.Robustness)
}

func TestRandom_Endpoints(t *testing.T) {
	curve, err := attack.Random(buildChain(t),
		attack.WithFractions([]float64{0, 1}))
	require.NoError(t, err)

	assert.Equal(t, 1.0, curve.Robustness[0])
	assert.Equal(t, 0.0, curve.Robustness[1])
}

func TestRandom_DeterministicForSeed(t *testing.T) {
	g := buildChain(t)

	first, err := attack.Random(g, attack.WithSeed(42))
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 16} {
		again, err := attack.Random(g, attack.WithSeed(42), attack.WithWorkers(workers))
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, first, again, "workers=%d", workers)
	}
}

func TestRandom_MeanOverTrials(t *testing.T) {
	// A→B only: drawing A kills both (robustness 0), drawing B leaves A
	// (robustness 0.5). The 100-trial mean lands near 0.25.
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	curve, err := attack.Random(g,
		attack.WithFractions([]float64{0.5}),
		attack.WithTrials(100))
	require.NoError(t, err)

	require.Len(t, curve.Robustness, 1)
	assert.InDelta(t, 0.25, curve.Robustness[0], 0.15)
}

func TestRandom_EmptyGraph(t *testing.T) {
	curve, err := attack.Random(core.NewGraph(),
		attack.WithFractions([]float64{0, 0.5, 1}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, curve.Robustness)
}

func TestOptionViolations(t *testing.T) {
	g := buildChain(t)

	_, err := attack.Random(g, attack.WithTrials(0))
	require.ErrorIs(t, err, attack.ErrOptionViolation)

	_, err = attack.Random(g, attack.WithWorkers(-1))
	require.ErrorIs(t, err, attack.ErrOptionViolation)

	_, err = attack.Random(g, attack.WithFractions(nil))
	require.ErrorIs(t, err, attack.ErrOptionViolation)

	_, err = attack.Random(g, attack.WithFractions([]float64{0.5, 1.5}))
	require.ErrorIs(t, err, attack.ErrOptionViolation)

	_, err = attack.Targeted(g, []string{"A"}, attack.WithFractions([]float64{-0.1}))
	require.ErrorIs(t, err, attack.ErrOptionViolation)
}

func TestCurves_InputGraphUntouched(t *testing.T) {
	g := buildChain(t)

	_, err := attack.Random(g, attack.WithFractions([]float64{1}))
	require.NoError(t, err)
	_, err = attack.Targeted(g, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}
