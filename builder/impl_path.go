// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)→i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the path edges plus (n-1)→0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	if n < minPathNodes {
		return invalid(methodPath, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodPath, nodes: n, emit: func(g *core.Graph, cfg builderConfig) error {
		for i := 1; i < n; i++ {
			if err := cfg.link(g, i-1, i); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return invalid(methodCycle, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices))
	}

	return Constructor{method: methodCycle, nodes: n, emit: func(g *core.Graph, cfg builderConfig) error {
		for i := 0; i < n; i++ {
			if err := cfg.link(g, i, (i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}}
}
