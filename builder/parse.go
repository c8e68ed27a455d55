// SPDX-License-Identifier: MIT
// Package: pathfind/builder
//
// parse.go - short textual topology forms for command-line use.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTopology parses one of:
//
//	path:N  cycle:N  star:N  complete:N  grid:RxC  random:N:P
//
// Kind names are case-insensitive. Size validation is left to the factory,
// so "path:1" yields a Constructor carrying ErrTooFewVertices.
func ParseTopology(s string) (Constructor, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Constructor{}, fmt.Errorf("%w: %q: missing ':'", ErrBadTopology, s)
	}

	switch strings.ToLower(kind) {
	case "path", "cycle", "star", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return Constructor{}, fmt.Errorf("%w: %q: %v", ErrBadTopology, s, err)
		}
		switch strings.ToLower(kind) {
		case "path":
			return Path(n), nil
		case "cycle":
			return Cycle(n), nil
		case "star":
			return Star(n), nil
		default:
			return Complete(n), nil
		}

	case "grid":
		rs, cs, ok := strings.Cut(strings.ToLower(args), "x")
		if !ok {
			return Constructor{}, fmt.Errorf("%w: %q: want grid:RxC", ErrBadTopology, s)
		}
		rows, err := strconv.Atoi(rs)
		if err != nil {
			return Constructor{}, fmt.Errorf("%w: %q: %v", ErrBadTopology, s, err)
		}
		cols, err := strconv.Atoi(cs)
		if err != nil {
			return Constructor{}, fmt.Errorf("%w: %q: %v", ErrBadTopology, s, err)
		}
		return Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return Constructor{}, fmt.Errorf("%w: %q: want random:N:P", ErrBadTopology, s)
		}
		n, err := strconv.Atoi(ns)
		if err != nil {
			return Constructor{}, fmt.Errorf("%w: %q: %v", ErrBadTopology, s, err)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return Constructor{}, fmt.Errorf("%w: %q: %v", ErrBadTopology, s, err)
		}
		return RandomSparse(n, p), nil
	}

	return Constructor{}, fmt.Errorf("%w: %q: unknown kind %q", ErrBadTopology, s, kind)
}
