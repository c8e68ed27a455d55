// File: path.go
// Role: Path reconstruction from parent links recorded during a run.
package core

import (
	"fmt"
	"strings"
)

// Path is an ordered root→goal sequence of node identities and its total cost.
type Path struct {
	// Nodes lists identities from the root (first) to the goal (last).
	Nodes []int

	// Cost is the sum of Weight(n, parent(n)) over consecutive pairs.
	Cost int64
}

// Hops returns the number of edges in the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// String renders the path as "A -> C -> D (cost 3)".
func (p Path) String() string {
	labels := make([]string, len(p.Nodes))
	for i, id := range p.Nodes {
		labels[i] = Label(id)
	}

	return fmt.Sprintf("%s (cost %d)", strings.Join(labels, " -> "), p.Cost)
}

// ReconstructPath walks parent links from goal back to the node without a
// parent, and returns the sequence in root→goal order with its cost.
//
// A goal that was never reached has no parent, so the result is the single
// node with cost 0. Callers must check search success separately rather than
// infer it from the path length.
//
// Complexity: O(path length).
func (g *Graph) ReconstructPath(goal *Node) Path {
	var (
		rev  []int
		cost int64
	)
	// A well-formed parent chain is acyclic and at most N long.
	for cur := goal; cur != nil && len(rev) < g.n; {
		rev = append(rev, cur.id)
		if cur.parent == NoParent {
			break
		}
		parent := g.slots[cur.parent]
		cost = AddCost(cost, g.Weight(cur, parent))
		cur = parent
	}

	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Path{Nodes: rev, Cost: cost}
}
