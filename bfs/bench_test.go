package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 1000
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_, _ = g.CreateNode(i)
	}
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, n-1)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	n := (1 << depth) - 1
	g, _ := core.NewGraph(n)
	for i := 0; i < n; i++ {
		_, _ = g.CreateNode(i)
	}
	for i := 0; 2*i+2 < n; i++ {
		_ = g.AddEdge(i, 2*i+1)
		_ = g.AddEdge(i, 2*i+2)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, n-1)
	}
}
