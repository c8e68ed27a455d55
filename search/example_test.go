package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/scenario"
	"github.com/katalvlaran/pathfind/search"
)

func ExampleFindPath() {
	g, _ := scenario.Default().Build()

	p, err := search.FindPath(g, search.AStar, 0, 6)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output: A -> C -> D -> E -> G (cost 9)
}

// ExampleRunAll compares every strategy on the demo scenario.
func ExampleRunAll() {
	g, _ := scenario.Default().Build()

	results, _ := search.RunAll(g, 0, 6)
	for _, res := range results {
		fmt.Printf("%-13s %v expanded=%d\n", res.Kind, res.Path, len(res.Expanded))
	}
	// Output:
	// bfs           A -> B -> E -> G (cost 14) expanded=7
	// dfs           A -> B -> D -> C -> F -> G (cost 23) expanded=6
	// dfs-iterative A -> B -> D -> C -> F -> G (cost 23) expanded=6
	// dijkstra      A -> C -> D -> E -> G (cost 9) expanded=7
	// greedy        A -> C -> F -> G (cost 15) expanded=4
	// astar         A -> C -> D -> E -> G (cost 9) expanded=5
}
