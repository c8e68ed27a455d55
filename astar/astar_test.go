package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/scenario"
)

func build(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = g.CreateNode(i)
		require.NoError(t, err)
	}

	return g
}

func TestAStar_Validation(t *testing.T) {
	_, err := astar.AStar(nil, 0, 0)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = astar.AStar(build(t, 2), 0, 2)
	assert.ErrorIs(t, err, core.ErrInvalidNodeIdentity)
}

func TestAStar_SevenNode(t *testing.T) {
	g, err := scenario.Default().Build()
	require.NoError(t, err)

	var order []int
	goal, err := astar.AStar(g, 0, 6, astar.WithOnVisit(func(id int) { order = append(order, id) }))
	require.NoError(t, err)
	require.NotNil(t, goal)

	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{0, 2, 3, 4, 6}, p.Nodes)
	assert.Equal(t, int64(9), p.Cost)
	assert.Equal(t, int64(9), goal.Distance())
	// the heuristic steers the search past B and F entirely
	assert.Equal(t, []int{0, 2, 3, 4, 6}, order)
}

func TestAStar_RootIsGoal(t *testing.T) {
	g, err := scenario.Default().Build()
	require.NoError(t, err)

	goal, err := astar.AStar(g, 2, 2)
	require.NoError(t, err)
	require.NotNil(t, goal)
	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{2}, p.Nodes)
	assert.Zero(t, p.Cost)
}

func TestAStar_Unreachable(t *testing.T) {
	g := build(t, 3)
	require.NoError(t, g.AddEdge(0, 1, core.WithWeight(2)))

	goal, err := astar.AStar(g, 0, 2)
	require.NoError(t, err)
	assert.Nil(t, goal)
}

func TestAStar_FallbackHeuristic(t *testing.T) {
	// No annotations: |goal - id| is admissible on a unit-weight chain.
	g := build(t, 5)
	for i := 0; i+1 < 5; i++ {
		require.NoError(t, g.AddEdge(i, i+1, core.WithWeight(1)))
	}
	require.NoError(t, g.AddEdge(0, 4, core.WithWeight(10)))

	goal, err := astar.AStar(g, 0, 4)
	require.NoError(t, err)
	require.NotNil(t, goal)
	p := g.ReconstructPath(goal)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Nodes)
	assert.Equal(t, int64(4), p.Cost)
}

func TestAStar_InadmissibleHeuristicIsNotChecked(t *testing.T) {
	// A→B→D costs 2, A→C→D costs 6; B's estimate of 100 overshoots.
	g := build(t, 4)
	require.NoError(t, g.AddEdge(0, 1, core.WithWeight(1)))
	require.NoError(t, g.AddEdge(0, 2, core.WithWeight(1)))
	require.NoError(t, g.AddEdge(1, 3, core.WithWeight(1)))
	require.NoError(t, g.AddEdge(2, 3, core.WithWeight(5)))
	require.NoError(t, g.SetHeuristic(0, 0))
	require.NoError(t, g.SetHeuristic(1, 100))
	require.NoError(t, g.SetHeuristic(2, 0))

	goal, err := astar.AStar(g, 0, 3)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, int64(6), g.ReconstructPath(goal).Cost)

	best, err := dijkstra.Dijkstra(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g.ReconstructPath(best).Cost)
}

func TestAStar_HeuristicFrozenDuringRun(t *testing.T) {
	g, err := scenario.Default().Build()
	require.NoError(t, err)

	var hookErr error
	_, err = astar.AStar(g, 0, 6, astar.WithOnVisit(func(id int) {
		if hookErr == nil {
			hookErr = g.SetHeuristic(id, 0)
		}
	}))
	require.NoError(t, err)
	assert.ErrorIs(t, hookErr, core.ErrRunInProgress)
}

func TestAStar_HeavyWeightsSaturate(t *testing.T) {
	g := build(t, 4)
	require.NoError(t, g.AddEdge(0, 1, core.WithWeight(core.MaxWeight)))
	require.NoError(t, g.AddEdge(1, 2, core.WithWeight(core.MaxWeight)))
	require.NoError(t, g.AddEdge(2, 3, core.WithWeight(core.MaxWeight)))
	for id := 0; id < 3; id++ {
		require.NoError(t, g.SetHeuristic(id, 1))
	}

	goal, err := astar.AStar(g, 0, 3)
	require.NoError(t, err)
	require.NotNil(t, goal)
	assert.Equal(t, core.MaxCost, goal.Distance())
	assert.Equal(t, []int{0, 1, 2, 3}, g.ReconstructPath(goal).Nodes)
}
