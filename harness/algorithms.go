// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// algorithms.go: the registry of measurable algorithms.
//
// Each entry adapts one algorithm package to the common signature
// func(*core.WeightedGraph) error and declares the diagonal convention its
// inputs are generated with: ∞ for the MST family, 0 for the rest. The
// algorithms themselves ignore the diagonal; the convention only keeps the
// generated matrices faithful to how each family is usually fed.

package harness

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
	"github.com/katalvlaran/densegraph/floydwarshall"
	"github.com/katalvlaran/densegraph/prim_kruskal"
)

// Algorithm is one measurable entry point.
type Algorithm struct {
	Name        string
	Description string
	// Diagonal is the W[i][i] value used when generating inputs.
	Diagonal float64
	// Run executes the algorithm and discards its result.
	Run func(g *core.WeightedGraph) error
}

var algorithms = []Algorithm{
	{
		Name:        "dijkstra",
		Description: "Dijkstra from every source (all-pairs matrix)",
		Run: func(g *core.WeightedGraph) error {
			_, err := dijkstra.AllPairs(g)
			return err
		},
	},
	{
		Name:        "floyd-warshall",
		Description: "Floyd–Warshall all-pairs shortest paths",
		Run: func(g *core.WeightedGraph) error {
			_, err := floydwarshall.FloydWarshall(g)
			return err
		},
	},
	{
		Name:        "kruskal",
		Description: "Kruskal minimum spanning tree (undirected, connected)",
		Diagonal:    core.Inf,
		Run: func(g *core.WeightedGraph) error {
			_, _, err := prim_kruskal.Kruskal(g)
			return err
		},
	},
	{
		Name:        "prim",
		Description: "Prim minimum spanning tree from vertex 0",
		Diagonal:    core.Inf,
		Run: func(g *core.WeightedGraph) error {
			_, _, err := prim_kruskal.Prim(g)
			return err
		},
	},
	{
		Name:        "bfs",
		Description: "breadth-first traversal from vertex 0",
		Run: func(g *core.WeightedGraph) error {
			_, err := bfs.BFS(g)
			return err
		},
	},
}

// Algorithms returns every registered algorithm in listing order.
// The returned slice is a copy.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// AlgorithmByName looks an algorithm up by name, case-insensitively.
func AlgorithmByName(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range algorithms {
		if a.Name == key {
			return a, nil
		}
	}

	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
