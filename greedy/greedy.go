package greedy

import (
	"github.com/katalvlaran/pathfind/core"
)

// Greedy searches from root towards goal, always expanding the frontier node
// that looks closest to the goal.
//
// Returns the goal with its parent chain populated, or nil if the goal is
// unreachable. Per-run state is reset by the call itself.
func Greedy(g *core.Graph, root, goal int, opts ...Option) (*core.Node, error) {
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
	g.Logger().Debug("search started", "algorithm", "greedy", "root", root, "goal", goal)

	for active := g.MinUnvisited(); active != nil; active = g.MinUnvisited() {
		g.MarkVisited(active)
		if cfg.OnVisit != nil {
			cfg.OnVisit(active.ID())
		}
		if active == target {
			g.Logger().Debug("goal reached", "algorithm", "greedy", "goal", goal)
			return active, nil
		}

		for _, child := range g.Children(active) {
			// First discovery only: a frontier node keeps its first parent.
			if g.Visited(child) || child.Distance() != core.Infinity {
				continue
			}
			g.Relax(child, active, g.Heuristic(child, target))
		}
	}

	g.Logger().Debug("goal unreachable", "algorithm", "greedy", "root", root, "goal", goal)

	return nil, nil
}
