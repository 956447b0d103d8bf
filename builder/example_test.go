package builder_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/builder"
)

// ExampleBuildGraph builds a 4-vertex path with constant weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4,
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Path())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// [0, 2, inf, inf]
	// [2, 0, 2, inf]
	// [inf, 2, 0, 2]
	// [inf, inf, 2, 0]
}

// ExampleCategoryByName generates one graph of a named family.
func ExampleCategoryByName() {
	c, err := builder.CategoryByName("disconnected")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, _ := c.Generate(6)
	fmt.Println(c.Name, g.N(), len(g.Edges()))
	// Output: disconnected 6 4
}
