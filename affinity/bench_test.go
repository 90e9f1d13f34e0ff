// SPDX-License-Identifier: MIT

package affinity_test

import (
	"testing"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/dataset"
	"github.com/katalvlaran/bookgraph/library"
)

// BenchmarkBuild measures the full pairwise scan on a generated catalog.
func BenchmarkBuild(b *testing.B) {
	cat := library.NewCatalog()
	dataset.Generate(dataset.WithReaders(200), dataset.WithBooks(400), dataset.WithRatingsPerReader(15)).Apply(cat)
	builder, err := affinity.NewBuilder()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(cat)
	}
}

// BenchmarkMostConnected measures ranking by degree through the priority queue.
func BenchmarkMostConnected(b *testing.B) {
	cat := library.NewCatalog()
	dataset.Generate(dataset.WithReaders(300), dataset.WithConnections(600)).Apply(cat)
	builder, _ := affinity.NewBuilder()
	n := affinity.NewNetwork(cat, builder)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.MostConnected(10)
	}
}
