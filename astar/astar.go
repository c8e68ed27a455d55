package astar

import (
	"github.com/katalvlaran/pathfind/core"
)

// AStar searches for a cheap path from root to goal guided by the graph's
// heuristic policy.
//
// Returns the goal with its parent chain populated, or nil if the goal is
// unreachable. On success goal.Distance() is the path cost, since the goal's
// own heuristic is 0. Per-run state is reset by the call itself.
func AStar(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
	start, target, err := core.Endpoints(g, root, goal)
	if err != nil {
		return nil, err
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.BeginRun(start, g.Heuristic(start, target))
	defer g.EndRun()
	g.Logger().Debug("search started", "algorithm", "astar", "root", root, "goal", goal)

	for active := g.MinUnvisited(); active != nil; active = g.MinUnvisited() {
		g.MarkVisited(active)
		if cfg.OnVisit != nil {
			cfg.OnVisit(active.ID())
		}
		if active == target {
			g.Logger().Debug("goal reached", "algorithm", "astar", "goal", goal, "cost", active.Distance())
			return active, nil
		}
		expand(g, active, target)
	}

	g.Logger().Debug("goal unreachable", "algorithm", "astar", "root", root, "goal", goal)

	return nil, nil
}

// expand relaxes every child of active with the candidate f-score.
// f saturates at core.MaxCost; past that point g-scores are no longer exact.
func expand(g *core.Graph, active, goal *core.Node) {
	gScore := active.Distance() - g.Heuristic(active, goal)
	for _, child := range g.Children(active) {
		f := core.AddCost(core.AddCost(gScore, g.Weight(active, child)), g.Heuristic(child, goal))
		if f < child.Distance() {
			g.Relax(child, active, f)
		}
	}
}
