package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
)

func TestReconstructPath_RootToGoal(t *testing.T) {
	g := sevenNodeGraph(t)
	a, c, d, e, goal := mustNode(t, g, NodeA), mustNode(t, g, NodeC), mustNode(t, g, NodeD),
		mustNode(t, g, NodeE), mustNode(t, g, NodeG)

	g.BeginRun(a, 0)
	g.SetParent(c, a)
	g.SetParent(d, c)
	g.SetParent(e, d)
	g.SetParent(goal, e)
	g.EndRun()

	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{NodeA, NodeC, NodeD, NodeE, NodeG}, p.Nodes)
	assert.Equal(t, int64(1+2+4+2), p.Cost)
	assert.Equal(t, 4, p.Hops())
	assert.Equal(t, "A -> C -> D -> E -> G (cost 9)", p.String())
}

func TestReconstructPath_UnreachedGoal(t *testing.T) {
	g := sevenNodeGraph(t)
	a, goal := mustNode(t, g, NodeA), mustNode(t, g, NodeG)

	g.BeginRun(a, 0)
	g.EndRun()

	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{NodeG}, p.Nodes)
	assert.Equal(t, int64(0), p.Cost)
	assert.Equal(t, 0, p.Hops())
}

func TestReconstructPath_ResolvesUnsetWeights(t *testing.T) {
	src := &scriptedSource{vals: []int{2}}
	g := newNodes(t, 2, core.WithWeightSource(src))
	require.NoError(t, g.AddEdge(NodeA, NodeB))
	a, b := mustNode(t, g, NodeA), mustNode(t, g, NodeB)

	g.BeginRun(a, 0)
	g.SetParent(b, a)
	g.EndRun()

	assert.Equal(t, int64(3), g.ReconstructPath(b).Cost)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", core.Label(0))
	assert.Equal(t, "Z", core.Label(25))
	assert.Equal(t, "26", core.Label(26))
}

func TestDump(t *testing.T) {
	g := newNodes(t, 3)
	require.NoError(t, g.AddEdge(NodeA, NodeB, core.WithWeight(4)))
	require.NoError(t, g.AddEdge(NodeA, NodeC, core.WithWeight(1)))
	require.NoError(t, g.SetHeuristic(NodeA, 8))

	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))
	want := "Node (A, h=8) connected to: (B, d=4) (C, d=1)\n" +
		"Node (B, h=-) connected to:\n" +
		"Node (C, h=-) connected to:\n"
	assert.Equal(t, want, buf.String())
}
