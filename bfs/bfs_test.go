package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/scenario"
)

func defaultGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := scenario.Default().Build()
	require.NoError(t, err)

	return g
}

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, 0, 1)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	g := defaultGraph(t)
	_, err = bfs.BFS(g, 9, 1)
	assert.ErrorIs(t, err, core.ErrInvalidNodeIdentity)
	_, err = bfs.BFS(g, 0, -1)
	assert.ErrorIs(t, err, core.ErrInvalidNodeIdentity)
}

func TestBFS_SevenNodeHopOptimal(t *testing.T) {
	g := defaultGraph(t)

	var order []int
	goal, err := bfs.BFS(g, 0, 6, bfs.WithOnVisit(func(id int) { order = append(order, id) }))
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, 6, goal.ID())

	p := g.ReconstructPath(goal)
	assert.Equal(t, 3, p.Hops())
	assert.Equal(t, []int{0, 1, 4, 6}, p.Nodes)
	assert.Equal(t, int64(4+8+2), p.Cost)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, order)
	assert.False(t, g.Running())
}

func TestBFS_RootIsGoal(t *testing.T) {
	g := defaultGraph(t)
	goal, err := bfs.BFS(g, 3, 3)
	require.NoError(t, err)
	require.NotNil(t, goal)

	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{3}, p.Nodes)
	assert.Equal(t, int64(0), p.Cost)
}

func TestBFS_Unreachable(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = g.CreateNode(i)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge(0, 1))

	// node 2 has no outgoing edges
	goal, err := bfs.BFS(g, 2, 0)
	require.NoError(t, err)
	assert.Nil(t, goal)

	// directional adjacency: 1 cannot reach 0
	goal, err = bfs.BFS(g, 1, 0)
	require.NoError(t, err)
	assert.Nil(t, goal)
}

func TestBFS_RepeatedRunsAreIdentical(t *testing.T) {
	g := defaultGraph(t)
	first, err := bfs.BFS(g, 0, 6)
	require.NoError(t, err)
	p1 := g.ReconstructPath(first)

	g.Reset()
	second, err := bfs.BFS(g, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, p1, g.ReconstructPath(second))
}
