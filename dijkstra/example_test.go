// Package dijkstra_test provides examples demonstrating the Dijkstra search.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/scenario"
)

// ExampleDijkstra finds the cheapest route through the seven-node demo graph.
func ExampleDijkstra() {
	g, err := scenario.Default().Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	goal, err := dijkstra.Dijkstra(g, 0, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.ReconstructPath(goal))
	// Output: A -> C -> D -> E -> G (cost 9)
}

// ExampleDijkstra_triangle demonstrates a detour that beats the direct edge.
func ExampleDijkstra_triangle() {
	// 1) Three nodes, edges recorded from A outwards.
	g, _ := core.NewGraph(3)
	for i := 0; i < 3; i++ {
		_, _ = g.CreateNode(i)
	}
	_ = g.AddEdge(0, 1, core.WithWeight(1))
	_ = g.AddEdge(1, 2, core.WithWeight(2))
	_ = g.AddEdge(0, 2, core.WithWeight(5))

	// 2) A→B→C costs 3, A→C costs 5.
	goal, _ := dijkstra.Dijkstra(g, 0, 2)
	fmt.Printf("dist[C]=%d via %v\n", goal.Distance(), g.ReconstructPath(goal).Nodes)
	// Output: dist[C]=3 via [0 1 2]
}
