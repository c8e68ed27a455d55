// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil   (pure/deterministic unless seeded)
//   • weightFn      = nil   (weights left unset for the engine to resolve)
//   • directed      = false (reverse arcs emitted when the graph needs them)
//   • heuristicGoal = -1    (no heuristic annotations)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathfind/core"
)

const noHeuristicGoal = -1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; nil leaves the weight unset.
	weightFn func(*rand.Rand) int64
	// Emit forward arcs only.
	directed bool
	// Goal identity for Grid heuristics, or noHeuristicGoal.
	heuristicGoal int
}

// newBuilderConfig applies options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{heuristicGoal: noHeuristicGoal}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// link adds u→v with the configured weight policy and, for undirected
// emission on a directional graph, the reverse arc as well. The reverse arc
// carries no weight option: the pair's weight is already cached.
func (cfg builderConfig) link(g *core.Graph, u, v int) error {
	var eopts []core.EdgeOption
	if cfg.weightFn != nil {
		eopts = append(eopts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if err := g.AddEdge(u, v, eopts...); err != nil {
		return err
	}
	if cfg.directed || g.SymmetricAdjacency() || u == v {
		return nil
	}

	return g.AddEdge(v, u)
}
