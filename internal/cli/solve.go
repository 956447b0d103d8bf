package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/bfs"
	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
	"github.com/katalvlaran/densegraph/floydwarshall"
	"github.com/katalvlaran/densegraph/prim_kruskal"
)

type solveOptions struct {
	algo   string
	input  string
	source int
	root   int
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one algorithm on a weight matrix from a TOML file",
		Long: `Run one algorithm on a weight matrix from a TOML file.

The file holds a square "weights" array; the TOML literal inf marks a
missing edge:

  weights = [
    [0.0, 4.0, inf],
    [4.0, 0.0, 1.0],
    [inf, 1.0, 0.0],
  ]`,
		Example: `  densegraph solve --algo floyd-warshall --input graph.toml
  densegraph solve --algo dijkstra --source 2 --input graph.toml
  densegraph solve --algo prim --root 3 --input graph.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.algo, "algo", "a", "", "dijkstra, floyd-warshall, kruskal, prim or bfs")
	f.StringVarP(&opts.input, "input", "i", "", "TOML file holding the weight matrix")
	f.IntVar(&opts.source, "source", -1, "dijkstra: single source with paths (default: all sources)")
	f.IntVar(&opts.root, "root", 0, "prim: start vertex")
	_ = cmd.MarkFlagRequired("algo")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func solve(cmd *cobra.Command, opts solveOptions) error {
	logger := loggerFromContext(cmd.Context())

	gf, err := loadGraphFile(opts.input)
	if err != nil {
		return err
	}
	g, err := core.FromMatrix(gf.Weights)
	if err != nil {
		return fmt.Errorf("graph %s: %w", opts.input, err)
	}
	logger.Debug("graph loaded", "path", opts.input, "n", g.N(), "symmetric", g.IsSymmetric())

	w := cmd.OutOrStdout()
	switch opts.algo {
	case "dijkstra":
		if opts.source >= 0 {
			return solveDijkstraFrom(w, g, opts.source)
		}
		d, err := dijkstra.AllPairs(g)
		if err != nil {
			return err
		}
		fmt.Fprint(w, d)
	case "floyd-warshall":
		d, err := floydwarshall.FloydWarshall(g)
		if err != nil {
			return err
		}
		fmt.Fprint(w, d)
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
		mst, total, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(
			prim_kruskal.WithMethod(opts.algo),
			prim_kruskal.WithRoot(opts.root),
		))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "total weight: %g\n", total)
		for _, e := range mst {
			fmt.Fprintf(w, "%d - %d  (%g)\n", e.From, e.To, e.Weight)
		}
	case "bfs":
		res, err := bfs.BFS(g, bfs.WithContext(cmd.Context()))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "order: %v\n", res.Order)
	default:
		return fmt.Errorf("unknown algorithm %q", opts.algo)
	}

	return nil
}

func solveDijkstraFrom(w io.Writer, g *core.WeightedGraph, source int) error {
	dist, prev, err := dijkstra.Dijkstra(g, source, dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	for v, d := range dist {
		if math.IsInf(d, 1) {
			fmt.Fprintf(w, "%d: unreachable\n", v)
			continue
		}
		fmt.Fprintf(w, "%d: %g via %v\n", v, d, dijkstra.PathTo(prev, source, v))
	}

	return nil
}
