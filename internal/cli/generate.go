package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/core"
)

func newGenerateCmd() *cobra.Command {
	var (
		category string
		n        int
		seed     int64
		infDiag  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph as a TOML weight matrix",
		Long: `Write a generated graph as a TOML weight matrix.

The output is accepted by "densegraph solve --input".`,
		Example: `  densegraph generate --category tree -n 8 --seed 3 > tree.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := builder.CategoryByName(category)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if infDiag {
				opts = append(opts, builder.WithDiagonal(core.Inf))
			}
			g, err := cat.Generate(n, opts...)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated", "category", cat.Name, "n", n, "edges", len(g.DirectedEdges()))

			if err := toml.NewEncoder(cmd.OutOrStdout()).Encode(graphFile{Weights: g.Rows()}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&category, "category", "c", "sparse", "graph category (see `densegraph list`)")
	f.IntVarP(&n, "nodes", "n", 10, "vertex count")
	f.Int64Var(&seed, "seed", 1, "generator seed")
	f.BoolVar(&infDiag, "inf-diagonal", false, "store inf instead of 0 on the diagonal")

	return cmd
}
