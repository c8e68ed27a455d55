// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep weight generation reproducible through fixed seeds or scripted sources.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
)

// Fixture identities used across core tests (avoid magic numbers in test bodies).
const (
	NodeA = iota
	NodeB
	NodeC
	NodeD
	NodeE
	NodeF
	NodeG
)

// scriptedSource replays a fixed sequence of raw values, modulo n.
type scriptedSource struct {
	vals []int
	next int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.vals[s.next%len(s.vals)]
	s.next++

	return v % n
}

// newNodes builds a graph of n created nodes with the given options.
func newNodes(t *testing.T, n int, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = g.CreateNode(i)
		require.NoError(t, err)
	}

	return g
}

// sevenNodeGraph builds the A..G fixture with both directions recorded, the
// way the demo driver lists adjacency per node:
//
//	A-B 4, A-C 1, B-D 3, B-E 8, C-D 2, C-F 6, D-E 4, E-G 2, F-G 8
//	heuristics to G: 8 8 6 5 1 4 0
func sevenNodeGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := newNodes(t, 7, opts...)

	type edge struct {
		u, v int
		w    int64
	}
	edges := []edge{
		{NodeA, NodeB, 4}, {NodeA, NodeC, 1},
		{NodeB, NodeD, 3}, {NodeB, NodeE, 8},
		{NodeC, NodeD, 2}, {NodeC, NodeF, 6},
		{NodeD, NodeE, 4}, {NodeE, NodeG, 2},
		{NodeF, NodeG, 8},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, core.WithWeight(e.w)))
		require.NoError(t, g.AddEdge(e.v, e.u))
	}
	for id, h := range []int64{8, 8, 6, 5, 1, 4, 0} {
		require.NoError(t, g.SetHeuristic(id, h))
	}

	return g
}

// mustNode fetches a created node or fails the test.
func mustNode(t *testing.T, g *core.Graph, id int) *core.Node {
	t.Helper()
	n, err := g.Node(id)
	require.NoError(t, err)

	return n
}
