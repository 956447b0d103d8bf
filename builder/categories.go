// SPDX-License-Identifier: MIT
// Package: densegraph/builder
//
// categories.go: the named graph families used by benchmark runs.
//
// The first twelve entries are the families every algorithm is measured on,
// in their reporting order. Several are aliases of the same sampler on
// purpose: "undirected", "weighted", "connected" and "sparse" all draw
// SparseDegree neighbours per vertex. The trailing entries are fixed
// topologies kept for structural comparisons.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densegraph/core"
)

// Category is a named, reusable graph family.
type Category struct {
	// Name is the lookup key (lowercase, no spaces).
	Name string
	// Description is a one-line summary for listings.
	Description string
	// Stochastic reports whether Generate needs an RNG.
	Stochastic bool

	ctor Constructor
}

// Generate builds an n-vertex graph of this family.
func (c Category) Generate(n int, opts ...BuilderOption) (*core.WeightedGraph, error) {
	g, err := BuildGraph(n, opts, c.ctor)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", c.Name, err)
	}

	return g, nil
}

var categories = []Category{
	{Name: "undirected", Description: "symmetric sparse graph", Stochastic: true, ctor: Sparse()},
	{Name: "directed", Description: "random arcs with p=0.05", Stochastic: true, ctor: Directed(DefaultDirectedProbability)},
	{Name: "weighted", Description: "sparse graph, integer weights 1..10", Stochastic: true, ctor: Sparse()},
	{Name: "unweighted", Description: "sparse graph, every weight 1", Stochastic: true, ctor: Unweighted()},
	{Name: "connected", Description: "sparse graph (connected in practice)", Stochastic: true, ctor: Sparse()},
	{Name: "disconnected", Description: "two disjoint paths", Stochastic: false, ctor: Disconnected()},
	{Name: "cyclic", Description: "sparse graph plus n/2 extra edges", Stochastic: true, ctor: Cyclic()},
	{Name: "acyclic", Description: "single path", Stochastic: false, ctor: Path()},
	{Name: "complete", Description: "every pair connected", Stochastic: false, ctor: Complete()},
	{Name: "sparse", Description: "4 neighbour draws per vertex", Stochastic: true, ctor: Sparse()},
	{Name: "dense", Description: "0.2·n neighbour draws per vertex", Stochastic: true, ctor: Dense()},
	{Name: "tree", Description: "random recursive tree", Stochastic: true, ctor: Tree()},
	{Name: "ring", Description: "single cycle over all vertices", Stochastic: false, ctor: Cycle()},
	{Name: "star", Description: "hub 0 linked to every vertex", Stochastic: false, ctor: Star()},
	{Name: "wheel", Description: "ring over 1..n-1 plus hub 0", Stochastic: false, ctor: Wheel()},
}

// Categories returns every registered family in reporting order.
// The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)

	return out
}

// CategoryNames returns the registered names in reporting order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	return names
}

// CategoryByName looks a family up by name, case-insensitively.
func CategoryByName(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if c.Name == key {
			return c, nil
		}
	}

	return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
