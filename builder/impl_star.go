// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_star.go - Star(n) and Complete(n).
//
// Contract:
//   - Star: n ≥ 2, center 0, spokes 0→i for i=1..n-1.
//   - Complete: n ≥ 1, every unordered pair {i,j} with i<j in lexicographic order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor for a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	if n < minStarNodes {
		return invalid(methodStar, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodStar, nodes: n, emit: func(g *core.Graph, cfg builderConfig) error {
		for i := 1; i < n; i++ {
			if err := cfg.link(g, 0, i); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Complete returns a Constructor for the complete simple graph K_n.
//
// Complexity: O(n²) edges; the engine's weight cache is O(n²) regardless.
func Complete(n int) Constructor {
	if n < minCompleteNodes {
		return invalid(methodComplete, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodComplete, nodes: n, emit: func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}}
}
