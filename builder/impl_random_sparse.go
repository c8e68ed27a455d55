// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like: include each admissible edge independently with prob p.
//   - Undirected: unordered pairs {i,j}, i<j. WithDirected: ordered pairs
//     (i,j), i≠j.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - The builder RNG is required when 0 < p < 1 (ErrNeedRandSource).
//   - Trial order is fixed (i asc, then j asc), so a fixed seed gives a
//     fixed edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	if n < minRandomSparseVertices {
		return invalid(methodRandomSparse, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices))
	}
	// written as a negated range so NaN is rejected too
	if !(p >= probMin && p <= probMax) {
		return invalid(methodRandomSparse, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability))
	}

	return Constructor{method: methodRandomSparse, nodes: n, emit: func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			first := i + 1
			if cfg.directed {
				first = 0
			}
			for j := first; j < n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := cfg.link(g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}}
}

// trial is one Bernoulli draw; p of 0 or 1 never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
