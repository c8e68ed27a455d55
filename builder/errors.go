// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; constructors
// wrap them with method context ("Grid: rows=0 ...: %w").

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure, e.g. a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadTopology indicates a ParseTopology input it cannot understand.
var ErrBadTopology = errors.New("builder: bad topology")
