// Package dijkstra_test provides runnable examples for the dijkstra package.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
)

// ExampleDijkstra computes distances from vertex 0 on the complete graph K4.
func ExampleDijkstra() {
	g, err := core.FromMatrix([][]float64{
		{0, 1, 4, 3},
		{1, 0, 2, 6},
		{4, 2, 0, 5},
		{3, 6, 5, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dist:", dist)
	fmt.Println("path to 2:", dijkstra.PathTo(prev, 0, 2))
	// Output:
	// dist: [0 1 3 3]
	// path to 2: [0 1 2]
}

// ExampleAllPairs prints the full distance matrix of a path 0-1-2 plus an
// isolated vertex 3.
func ExampleAllPairs() {
	b, _ := core.NewBuilder(4)
	_ = b.SetEdge(0, 1, 2)
	_ = b.SetEdge(1, 2, 3)

	m, err := dijkstra.AllPairs(b.Build())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [0, 2, 5, inf]
	// [2, 0, 3, inf]
	// [5, 3, 0, inf]
	// [inf, inf, inf, 0]
}
