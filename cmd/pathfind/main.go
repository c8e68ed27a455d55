// Command pathfind loads a search scenario, dumps the graph and runs one or
// every search strategy on it.
//
//	pathfind                                  # built-in seven-node scenario
//	pathfind --scenario maze.yaml --algorithm dijkstra
//	pathfind --all --root 0 --goal 6 --log-level debug
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pathfind:", err)
		os.Exit(1)
	}
}
