// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/trophiclab/foodweb/core"
)

// BenchmarkAddEdge measures performance of recording interactions in a
// default trophic graph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("alga", fmt.Sprintf("consumer-%d", i))
	}
}

// BenchmarkAddEdge_Parallel measures the parallel-edge path used by the raw
// loader stage.
func BenchmarkAddEdge_Parallel(b *testing.B) {
	g := core.NewGraph(core.WithParallelEdges())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cycle through 100 consumers to stress many parallel edges per pair.
		_, _ = g.AddEdge("alga", fmt.Sprintf("consumer-%d", i%100))
	}
}

// BenchmarkInDegree measures the in-degree query on a star of producers, the
// quantity the cascade engine rescans after every deletion round.
func BenchmarkInDegree(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("producer-%d", i), "apex")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InDegree("apex")
	}
}

// BenchmarkClone measures deep-copy cost, the per-candidate overhead of the
// vulnerability ranker.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 500; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("prey-%d", i), fmt.Sprintf("pred-%d", i%50))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

// BenchmarkRemoveVertex measures incident-edge teardown on a hub vertex.
func BenchmarkRemoveVertex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph()
		for j := 0; j < 200; j++ {
			_, _ = g.AddEdge(fmt.Sprintf("prey-%d", j), "hub")
		}
		b.StartTimer()
		_ = g.RemoveVertex("hub")
	}
}
