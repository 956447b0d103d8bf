package core_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
)

// ExampleNewBuilder builds the triangle 0-1-2 and lists its edges.
func ExampleNewBuilder() {
	b, err := core.NewBuilder(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = b.SetEdge(0, 1, 1)
	_ = b.SetEdge(1, 2, 2)
	_ = b.SetEdge(0, 2, 3)

	g := b.Build()
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d w=%g\n", e.From, e.To, e.Weight)
	}
	fmt.Println("symmetric:", g.IsSymmetric())
	// Output:
	// 0-1 w=1
	// 0-2 w=3
	// 1-2 w=2
	// symmetric: true
}

// ExampleFromMatrix shows the Inf sentinel for a missing edge.
func ExampleFromMatrix() {
	g, err := core.FromMatrix([][]float64{
		{0, 4, core.Inf},
		{4, 0, 1},
		{core.Inf, 1, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	fmt.Println(g.HasEdge(0, 2))
	// Output:
	// [0, 4, inf]
	// [4, 0, 1]
	// [inf, 1, 0]
	// false
}
