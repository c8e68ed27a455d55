// Package astar implements A* goal search on a core.Graph.
//
// A single distance field per node carries the f-score f = g + h:
//
//	root.distance = heuristic(root, goal)
//	loop:
//	    active = MinUnvisited()          // smallest f
//	    mark active visited; stop if active == goal
//	    for each child:
//	        g = (active.distance - heuristic(active, goal)) + weight(active, child)
//	        f = g + heuristic(child, goal)
//	        if f < child.distance: child.distance = f, child.parent = active
//
// The g-score is recovered by subtracting the active node's heuristic from its
// stored f-score, so heuristics must stay fixed for the whole run; the graph
// rejects SetHeuristic while a run is in progress.
//
// Optimality:
//
//	With an admissible heuristic (never overestimating the remaining cost) the
//	returned path is as cheap as the one Dijkstra finds. Admissibility is the
//	caller's responsibility and is not checked: an inadmissible heuristic
//	silently yields a suboptimal path.
//
// Note that a goal's own estimate is always 0, whatever its annotation.
package astar
