package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvclique/bfs"
	"github.com/katalvlaran/lvclique/builder"
	"github.com/katalvlaran/lvclique/core"
)

// BenchmarkEnumerator_Path measures a full enumeration over a long chain.
func BenchmarkEnumerator_Path(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Collect(g, 0)
	}
}

// BenchmarkEnumerator_RandomSparse measures enumeration on a sparse random graph.
func BenchmarkEnumerator_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomSparse(2000, 0.002))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Histogram(g, 0)
	}
}

// BenchmarkEnumerator_Hub measures the first level of a high-degree star.
func BenchmarkEnumerator_Hub(b *testing.B) {
	g := core.NewGraph()
	for i := 1; i <= 5000; i++ {
		_ = g.AddEdge(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(g, 0)
	}
}
