// File: dump.go
// Role: Diagnostic listing of nodes, heuristics and adjacent weights.
// Not part of the search contract.
package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Label renders a node identity for humans: 'A'+id for ids below 26,
// otherwise the decimal identity.
func Label(id int) string {
	if id >= 0 && id < 26 {
		return string(rune('A' + id))
	}

	return strconv.Itoa(id)
}

// Dump writes one line per node in creation order:
//
//	Node (A, h=8) connected to: (B, d=4) (C, d=1)
//
// Nodes without a heuristic print "h=-". Unset weights are resolved (and
// cached) exactly as Weight does, so dumping before a run consumes values
// from the random source.
func (g *Graph) Dump(w io.Writer) error {
	var sb strings.Builder
	for _, node := range g.order {
		h := "-"
		if node.hasHeuristic {
			h = strconv.FormatInt(node.heuristic, 10)
		}
		fmt.Fprintf(&sb, "Node (%s, h=%s) connected to:", Label(node.id), h)
		for _, child := range g.Children(node) {
			fmt.Fprintf(&sb, " (%s, d=%d)", Label(child.id), g.Weight(child, node))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
