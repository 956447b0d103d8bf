package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/floydwarshall"
)

// ExampleFloydWarshall computes distances on a directed 3-cycle 0→1→2→0.
func ExampleFloydWarshall() {
	b, _ := core.NewBuilder(3)
	_ = b.SetArc(0, 1, 1)
	_ = b.SetArc(1, 2, 2)
	_ = b.SetArc(2, 0, 4)

	dist, err := floydwarshall.FloydWarshall(b.Build())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(dist)
	// Output:
	// [0, 1, 3]
	// [6, 0, 2]
	// [4, 5, 0]
}
