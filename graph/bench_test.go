package graph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bookgraph/graph"
)

// BenchmarkShortestPath_Chain measures BFS across a chain of N vertices.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 5000
	g := graph.New[string]()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ShortestPath("v0", fmt.Sprintf("v%d", N))
	}
}

// BenchmarkConnectedComponents_Islands measures components over many small islands.
func BenchmarkConnectedComponents_Islands(b *testing.B) {
	const islands, size = 500, 8
	g := graph.New[int]()
	for k := 0; k < islands; k++ {
		base := k * size
		for j := 1; j < size; j++ {
			_ = g.AddEdge(base, base+j)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
