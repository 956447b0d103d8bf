// Package densegraph is a small graph engine built on dense weight matrices,
// together with a harness that measures its algorithms empirically.
//
// 🚀 What is densegraph?
//
//	An n×n matrix W is the graph: W[i][j] is the weight of the edge i→j and
//	+Inf means "no edge". The diagonal may hold 0 or +Inf and is ignored by
//	every algorithm. A graph is undirected exactly when W is symmetric.
//
//		• Shortest paths: Dijkstra (single source and all sources), Floyd–Warshall
//		• Minimum spanning trees: Kruskal, Prim
//		• Traversal: BFS from vertex 0 in increasing index order
//		• Union–Find with path compression and union by rank
//		• Seeded graph generators grouped into named categories
//		• A sweep runner with CSV and text reports, and the densegraph CLI
//
// Under the hood, everything is organized into flat packages:
//
//	matrix/        - row-major Dense matrix + validators (symmetry, closeness)
//	core/          - immutable WeightedGraph and its Builder
//	unionfind/     - disjoint-set forest
//	dijkstra/      - binary-heap Dijkstra, AllPairs
//	floydwarshall/ - triple-loop APSP with negative-cycle detection
//	prim_kruskal/  - Kruskal, Prim, Compute
//	bfs/           - breadth-first traversal with hooks
//	builder/       - Constructors, weight policies, categories
//	harness/       - Runner, Report, WriteCSV/WriteText
//	cmd/densegraph - run, solve, generate, list
//
// Quick example:
//
//	    0───1
//	    │ ╲ │
//	    3   2
//
//	g, _ := core.FromMatrix([][]float64{...})
//	mst, total, err := prim_kruskal.Kruskal(g)
//
//	go install github.com/katalvlaran/densegraph/cmd/densegraph@latest
package densegraph
