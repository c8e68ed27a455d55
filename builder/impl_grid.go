// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood, identity r*cols + c (row-major).
//   • For each (r,c) emit Right then Bottom when present.
//   • With WithHeuristicGoal(goal) every node gets h = |r-gr| + |c-gc|, the
//     Manhattan distance to the goal cell. Admissible while weights are ≥ 1.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	if rows < minGridDim || cols < minGridDim {
		return invalid(methodGrid, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices))
	}

	return Constructor{method: methodGrid, nodes: rows * cols, emit: func(g *core.Graph, cfg builderConfig) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := cfg.link(g, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(g, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		if cfg.heuristicGoal == noHeuristicGoal {
			return nil
		}
		if cfg.heuristicGoal >= rows*cols {
			return fmt.Errorf("%s: heuristic goal %d outside %dx%d grid: %w",
				methodGrid, cfg.heuristicGoal, rows, cols, core.ErrInvalidNodeIdentity)
		}
		gr, gc := cfg.heuristicGoal/cols, cfg.heuristicGoal%cols
		for id := 0; id < rows*cols; id++ {
			h := abs(id/cols-gr) + abs(id%cols-gc)
			if err := g.SetHeuristic(id, int64(h)); err != nil {
				return err
			}
		}

		return nil
	}}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
