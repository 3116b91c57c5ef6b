package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neuronet/bfs"
	"github.com/katalvlaran/neuronet/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges := make([]core.Edge, N)
	for i := range edges {
		edges[i] = core.Edge{From: core.NodeID(i), To: core.NodeID(i + 1)}
	}
	g := mustBuild(b, edges...)

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, N)
	}
}

// BenchmarkBFS_Local measures a shallow traversal from a single node of a
// large random graph; cost should track the visited region, not the graph.
func BenchmarkBFS_Local(b *testing.B) {
	const nodes, edgeCount = 1_000_000, 4_000_000
	rng := rand.New(rand.NewSource(1))
	edges := make([]core.Edge, edgeCount)
	for i := range edges {
		edges[i] = core.Edge{From: core.NodeID(rng.Intn(nodes)), To: core.NodeID(rng.Intn(nodes))}
	}
	g := mustBuild(b, edges...)
	start := edges[0].From

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start, 2)
	}
}
