package dfs_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
)

func chain(n int) *core.Graph {
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_, _ = g.CreateNode(i)
	}
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g
}

// BenchmarkDFS_Recursive measures recursive DFS on a chain.
func BenchmarkDFS_Recursive(b *testing.B) {
	const n = 1000
	g := chain(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0, n-1)
	}
}

// BenchmarkDFS_Iterative measures explicit-stack DFS on the same chain.
func BenchmarkDFS_Iterative(b *testing.B) {
	const n = 1000
	g := chain(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFSIterative(g, 0, n-1)
	}
}
