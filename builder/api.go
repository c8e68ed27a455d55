// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// api.go - public entry point and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Constructor describes one topology over identities [0, Nodes()).
// Factories validate their parameters up front; an invalid Constructor
// carries its error and BuildGraph returns it without building anything.
type Constructor struct {
	method string
	nodes  int
	err    error
	emit   func(g *core.Graph, cfg builderConfig) error
}

// Nodes returns the number of identities the topology spans.
func (c Constructor) Nodes() int { return c.nodes }

// String returns the constructor's method tag, e.g. "Grid".
func (c Constructor) String() string { return c.method }

// BuildGraph creates a core.Graph sized for the largest constructor, creates
// every node in identity order, resolves the builder configuration from bopts
// and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed if cons is empty or holds a zero Constructor.
//   - Any factory or core error, wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if len(cons) == 0 {
		return nil, fmt.Errorf("BuildGraph: no constructors: %w", ErrConstructFailed)
	}
	n := 0
	for i, c := range cons {
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", c.err)
		}
		if c.emit == nil {
			return nil, fmt.Errorf("BuildGraph: zero constructor at index %d: %w", i, ErrConstructFailed)
		}
		n = max(n, c.nodes)
	}

	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for id := 0; id < n; id++ {
		if _, err = g.CreateNode(id); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err = c.emit(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %s: %w", c.method, err)
		}
	}
	g.Logger().Debug("graph built", "nodes", n, "constructors", len(cons))

	return g, nil
}

// invalid returns a Constructor that only reports err.
func invalid(method string, err error) Constructor {
	return Constructor{method: method, err: err}
}
