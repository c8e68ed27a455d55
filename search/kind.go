package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for a Kind outside the known set or a name
// ParseKind does not recognise.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Kind names a search strategy.
type Kind int

const (
	BFS Kind = iota
	DFS
	DFSIterative
	Dijkstra
	Greedy
	AStar
)

// Kinds lists every strategy in the order RunAll executes them.
var Kinds = []Kind{BFS, DFS, DFSIterative, Dijkstra, Greedy, AStar}

var kindNames = map[Kind]string{
	BFS:          "bfs",
	DFS:          "dfs",
	DFSIterative: "dfs-iterative",
	Dijkstra:     "dijkstra",
	Greedy:       "greedy",
	AStar:        "astar",
}

// String returns the canonical lower-case name, e.g. "dfs-iterative".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name to its Kind. Matching ignores case, and "a*" and
// "dfs_iterative" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	switch norm {
	case "a*":
		return AStar, nil
	case "dfs_iterative", "dfsiterative":
		return DFSIterative, nil
	}
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
