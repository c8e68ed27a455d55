// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// options.go - functional options for builder configuration.
// Option constructors validate eagerly and panic on programmer error;
// build-time parameter errors are returned as sentinels instead.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets a custom weight generator. The generator receives the
// builder RNG, which may be nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstWeight gives every emitted edge weight w.
func WithConstWeight(w int64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstWeight(%d): weight must be ≥ 0", w))
	}
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// WithUniformWeights draws weights uniformly from [lo, hi]. Without an RNG
// every weight falls back to lo.
func WithUniformWeights(lo, hi int64) BuilderOption {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: WithUniformWeights: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return WithWeightFn(func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	})
}

// WithDirected emits forward arcs only.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithHeuristicGoal makes Grid annotate every node with its Manhattan
// distance to goal.
func WithHeuristicGoal(goal int) BuilderOption {
	if goal < 0 {
		panic(fmt.Sprintf("builder: WithHeuristicGoal(%d)", goal))
	}
	return func(c *builderConfig) {
		c.heuristicGoal = goal
	}
}
