package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/astar"
	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/greedy"
)

// ErrGoalUnreachable is returned by FindPath when the strategy exhausts the
// reachable graph without finding the goal.
var ErrGoalUnreachable = errors.New("search: goal unreachable")

// Options configures a dispatched run.
type Options struct {
	// OnVisit is forwarded to the selected strategy's own hook.
	OnVisit func(id int)
}

// Option represents a functional option for Run, FindPath and RunAll.
type Option func(*Options)

// WithOnVisit registers a hook called each time the strategy expands a node.
func WithOnVisit(fn func(id int)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// Run executes the strategy named by kind from root towards goal.
//
// A nil node with a nil error means the goal is unreachable.
func Run(g *core.Graph, kind Kind, root, goal int, opts ...Option) (*core.Node, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	visit := cfg.OnVisit

	switch kind {
	case BFS:
		return bfs.BFS(g, root, goal, bfs.WithOnVisit(visit))
	case DFS:
		return dfs.DFS(g, root, goal, dfs.WithOnVisit(visit))
	case DFSIterative:
		return dfs.DFSIterative(g, root, goal, dfs.WithOnVisit(visit))
	case Dijkstra:
		return dijkstra.Dijkstra(g, root, goal, dijkstra.WithOnVisit(visit))
	case Greedy:
		return greedy.Greedy(g, root, goal, greedy.WithOnVisit(visit))
	case AStar:
		return astar.AStar(g, root, goal, astar.WithOnVisit(visit))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, kind)
	}
}

// FindPath runs kind and reconstructs the root→goal path.
func FindPath(g *core.Graph, kind Kind, root, goal int, opts ...Option) (core.Path, error) {
	found, err := Run(g, kind, root, goal, opts...)
	if err != nil {
		return core.Path{}, err
	}
	if found == nil {
		return core.Path{}, fmt.Errorf("%w: %s from %s to %s",
			ErrGoalUnreachable, kind, core.Label(root), core.Label(goal))
	}

	return g.ReconstructPath(found), nil
}

// Result is the outcome of one strategy in RunAll.
type Result struct {
	Kind Kind
	// Found is false when the goal was unreachable; Path is then empty.
	Found bool
	Path  core.Path
	// Expanded lists node identities in the order the strategy expanded them.
	Expanded []int
}

// RunAll runs every strategy in Kinds order on g and collects one Result per
// strategy. It stops at the first validation error.
func RunAll(g *core.Graph, root, goal int) ([]Result, error) {
	results := make([]Result, 0, len(Kinds))
	for _, kind := range Kinds {
		res := Result{Kind: kind}
		found, err := Run(g, kind, root, goal, WithOnVisit(func(id int) {
			res.Expanded = append(res.Expanded, id)
		}))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if found != nil {
			res.Found = true
			res.Path = g.ReconstructPath(found)
		}
		results = append(results, res)
	}

	return results, nil
}
