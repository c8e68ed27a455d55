// File: run.go
// Role: Per-run state primitives shared by every search strategy:
//       Reset, BeginRun/EndRun, visited flags, relaxation and MinUnvisited.
//
// Lifecycle of one run:
//
//	g.BeginRun(root, d0)  // clear visited, distances → Infinity, parents → none
//	... MarkVisited / Relax / SetParent / MinUnvisited ...
//	g.EndRun()
//
// Node states move forward only: unvisited → frontier (distance < Infinity)
// → visited. Nothing is un-visited until the next BeginRun or Reset.
package core

import "fmt"

// Reset clears all visited flags. Distances and parents are left untouched;
// strategies that depend on them reinitialize them in BeginRun.
//
// Complexity: O(N).
func (g *Graph) Reset() {
	for i := range g.visited {
		g.visited[i] = false
	}
}

// BeginRun prepares per-run state for a search rooted at root: it resets
// visited flags, sets every distance to Infinity, clears every parent and
// finally assigns rootDistance to root.
//
// Until EndRun, SetHeuristic and AddEdge fail with ErrRunInProgress.
//
// Complexity: O(N).
func (g *Graph) BeginRun(root *Node, rootDistance int64) {
	g.Reset()
	for _, node := range g.order {
		node.distance = Infinity
		node.parent = NoParent
	}
	root.distance = rootDistance
	g.running = true
}

// EndRun releases the mutation guard taken by BeginRun.
// Per-run state stays readable for path reconstruction.
func (g *Graph) EndRun() { g.running = false }

// Running reports whether a run is between BeginRun and EndRun.
func (g *Graph) Running() bool { return g.running }

// MarkVisited marks n visited for the current run.
func (g *Graph) MarkVisited(n *Node) { g.visited[n.id] = true }

// Visited reports whether n was visited in the current run.
func (g *Graph) Visited(n *Node) bool { return g.visited[n.id] }

// SetParent records parent as n's predecessor.
func (g *Graph) SetParent(n, parent *Node) { n.parent = parent.id }

// Relax sets n's distance and predecessor together.
func (g *Graph) Relax(n, parent *Node, distance int64) {
	n.distance = distance
	n.parent = parent.id
}

// MinUnvisited returns the unvisited node with the smallest distance, or nil
// if no unvisited node has a finite distance. Ties go to the node created
// first.
//
// Complexity: O(N).
func (g *Graph) MinUnvisited() *Node {
	var next *Node
	best := Infinity
	for _, node := range g.order {
		if !g.visited[node.id] && node.distance < best {
			best = node.distance
			next = node
		}
	}

	return next
}

// AddCost returns a+b for non-negative operands, saturating at MaxCost.
func AddCost(a, b int64) int64 {
	if b > 0 && a > MaxCost-b {
		return MaxCost
	}

	return a + b
}

// Endpoints validates a search request and resolves root and goal handles.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrInvalidNodeIdentity / ErrNodeNotFound for either identity.
func Endpoints(g *Graph, root, goal int) (*Node, *Node, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	r, err := g.Node(root)
	if err != nil {
		return nil, nil, fmt.Errorf("root: %w", err)
	}
	t, err := g.Node(goal)
	if err != nil {
		return nil, nil, fmt.Errorf("goal: %w", err)
	}

	return r, t, nil
}
