package graph_test

import (
	"testing"

	"github.com/ObakengPitse/municipal-issue-reporter/graph"
	"github.com/ObakengPitse/municipal-issue-reporter/graph/builder"
)

// buildRandom creates a connected graph with n nodes and extra random edges.
func buildRandom(n, extra int) *graph.Graph[int] {
	return builder.MustBuild(
		[]builder.Option{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
		builder.Connected(n, extra),
	)
}

func BenchmarkBFS(b *testing.B) {
	g := buildRandom(1000, 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.BFS(0)
	}
}

func BenchmarkDFS(b *testing.B) {
	g := buildRandom(1000, 4000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.DFS(0)
	}
}

func BenchmarkPrimMST(b *testing.B) {
	g := buildRandom(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.PrimMST()
	}
}
