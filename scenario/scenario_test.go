package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/scenario"
)

func TestDefault(t *testing.T) {
	s := scenario.Default()
	assert.Equal(t, "seven-node", s.Name)
	assert.Equal(t, 7, s.Nodes)
	assert.Equal(t, 0, s.Root)
	assert.Equal(t, 6, s.Goal)
	assert.Equal(t, "astar", s.Algorithm)
	require.Len(t, s.Heuristics, 7)
	assert.Len(t, s.Edges, 18)
	assert.Nil(t, s.Edges[2].Weight)
}

func TestBuild_DefaultGraph(t *testing.T) {
	g, err := scenario.Default().Build()
	require.NoError(t, err)
	assert.Equal(t, 7, g.Len())

	a, err := g.Node(0)
	require.NoError(t, err)
	b, err := g.Node(1)
	require.NoError(t, err)

	var children []int
	for _, c := range g.Children(b) {
		children = append(children, c.ID())
	}
	assert.Equal(t, []int{0, 3, 4}, children)
	assert.Equal(t, int64(4), g.Weight(b, a))

	h, ok := a.Heuristic()
	assert.True(t, ok)
	assert.Equal(t, int64(8), h)
}

func TestParse_UnsetHeuristicsAndWeights(t *testing.T) {
	doc := []byte(`
nodes: 3
root: 0
goal: 2
heuristics: [~, 4]
edges:
  - {from: 0, to: 1}
  - {from: 1, to: 2, weight: 0}
`)
	s, err := scenario.Parse(doc)
	require.NoError(t, err)

	g, err := s.Build(core.WithSeed(5))
	require.NoError(t, err)
	a, _ := g.Node(0)
	b, _ := g.Node(1)
	c, _ := g.Node(2)

	_, ok := a.Heuristic()
	assert.False(t, ok)
	h, ok := b.Heuristic()
	assert.True(t, ok)
	assert.Equal(t, int64(4), h)
	assert.Equal(t, int64(0), g.Weight(b, c))

	w := g.Weight(a, b)
	assert.GreaterOrEqual(t, w, core.MinRandomWeight)
	assert.LessOrEqual(t, w, core.MaxRandomWeight)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero nodes":      "nodes: 0\n",
		"root range":      "nodes: 2\nroot: 2\n",
		"goal range":      "nodes: 2\ngoal: -1\n",
		"edge range":      "nodes: 2\nedges: [{from: 0, to: 5}]\n",
		"negative weight": "nodes: 2\nedges: [{from: 0, to: 1, weight: -3}]\n",
		"heuristics":      "nodes: 1\nheuristics: [1, 2]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(doc))
			assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
		})
	}
}

func TestParse_InvalidNamesField(t *testing.T) {
	_, err := scenario.Parse([]byte("nodes: 3\nroot: 3\n"))
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Contains(t, err.Error(), "Scenario.Root fails ltfield=Nodes, got 3")

	_, err = scenario.Parse([]byte("nodes: 2\nedges: [{from: 0, to: 1, weight: -3}]\n"))
	require.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Contains(t, err.Error(), "Scenario.Edges[0].Weight fails gte=0")
}

func TestParse_UnknownField(t *testing.T) {
	_, err := scenario.Parse([]byte("nodes: 2\ncolour: red\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.yaml")
	doc := "name: line\nnodes: 2\nroot: 0\ngoal: 1\nedges: [{from: 0, to: 1, weight: 9}]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "line", s.Name)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild_Symmetric(t *testing.T) {
	s, err := scenario.Parse([]byte("nodes: 2\nsymmetric: true\nedges: [{from: 0, to: 1}]\n"))
	require.NoError(t, err)
	g, err := s.Build()
	require.NoError(t, err)
	b, _ := g.Node(1)
	require.Len(t, g.Children(b), 1)
	assert.Equal(t, 0, g.Children(b)[0].ID())
}
