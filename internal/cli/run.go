package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densegraph/builder"
	"github.com/katalvlaran/densegraph/harness"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

// runOptions holds the `run` flags.
type runOptions struct {
	configPath string
	output     string
	exp        experimentFile
}

func newRunCmd() *cobra.Command {
	opts := runOptions{exp: experimentFile{Format: formatText, Sweep: harness.DefaultConfig()}}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure one algorithm across graph categories",
		Long: `Measure one algorithm across graph categories.

For each category and each n in [min-nodes, max-nodes] (step apart), run the
algorithm on freshly generated graphs and report the mean time and allocation
over the successful trials. Categories where the algorithm never succeeds are
reported as excluded.

Flags override values from --config.`,
		Example: `  densegraph run --algo kruskal
  densegraph run --algo dijkstra --category sparse,dense --max-nodes 100 --format csv
  densegraph run --config bench.toml --trials 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runSweep(cmd, exp, opts.output)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "experiment TOML file")
	f.StringVarP(&opts.exp.Algorithm, "algo", "a", "", "algorithm to measure (see `densegraph list`)")
	f.StringSliceVarP(&opts.exp.Categories, "category", "c", nil, "categories to run (default: all)")
	f.StringVarP(&opts.exp.Format, "format", "f", formatText, "output format: text or csv")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	f.IntVar(&opts.exp.Sweep.MinNodes, "min-nodes", harness.DefaultMinNodes, "smallest vertex count")
	f.IntVar(&opts.exp.Sweep.MaxNodes, "max-nodes", harness.DefaultMaxNodes, "largest vertex count")
	f.IntVar(&opts.exp.Sweep.Step, "step", harness.DefaultStep, "vertex count increment")
	f.IntVar(&opts.exp.Sweep.Trials, "trials", harness.DefaultTrials, "graphs per (category, n) point")
	f.Int64Var(&opts.exp.Sweep.Seed, "seed", harness.DefaultSeed, "generator seed")

	return cmd
}

// resolve merges defaults, the optional config file and explicitly set flags,
// in that order of increasing precedence.
func (o *runOptions) resolve(cmd *cobra.Command) (experimentFile, error) {
	if o.configPath == "" {
		return o.exp, nil
	}

	base := experimentFile{Format: formatText, Sweep: harness.DefaultConfig()}
	fromFile, err := loadExperiment(o.configPath, base)
	if err != nil {
		return experimentFile{}, err
	}

	f := cmd.Flags()
	if f.Changed("algo") {
		fromFile.Algorithm = o.exp.Algorithm
	}
	if f.Changed("category") {
		fromFile.Categories = o.exp.Categories
	}
	if f.Changed("format") {
		fromFile.Format = o.exp.Format
	}
	if f.Changed("min-nodes") {
		fromFile.Sweep.MinNodes = o.exp.Sweep.MinNodes
	}
	if f.Changed("max-nodes") {
		fromFile.Sweep.MaxNodes = o.exp.Sweep.MaxNodes
	}
	if f.Changed("step") {
		fromFile.Sweep.Step = o.exp.Sweep.Step
	}
	if f.Changed("trials") {
		fromFile.Sweep.Trials = o.exp.Sweep.Trials
	}
	if f.Changed("seed") {
		fromFile.Sweep.Seed = o.exp.Sweep.Seed
	}

	return fromFile, nil
}

func runSweep(cmd *cobra.Command, exp experimentFile, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if exp.Algorithm == "" {
		return fmt.Errorf("no algorithm given (use --algo or set \"algorithm\" in --config)")
	}
	algo, err := harness.AlgorithmByName(exp.Algorithm)
	if err != nil {
		return err
	}
	if exp.Format != formatText && exp.Format != formatCSV {
		return fmt.Errorf("unknown format %q (want %s or %s)", exp.Format, formatText, formatCSV)
	}
	cats, err := selectCategories(exp.Categories)
	if err != nil {
		return err
	}

	logger.Debug("starting sweep",
		"algorithm", algo.Name,
		"categories", len(cats),
		"min", exp.Sweep.MinNodes,
		"max", exp.Sweep.MaxNodes,
		"step", exp.Sweep.Step,
		"trials", exp.Sweep.Trials,
		"seed", exp.Sweep.Seed)

	rep, err := harness.NewRunner(exp.Sweep, logger).Run(ctx, algo, cats)
	if err != nil {
		return err
	}
	logger.Info("sweep done", "algorithm", algo.Name, "elapsed", rep.Elapsed)

	if output == "" {
		return writeReport(cmd.OutOrStdout(), exp.Format, rep)
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := writeReport(file, exp.Format, rep); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}

	return nil
}

func writeReport(w io.Writer, format string, rep *harness.Report) error {
	if format == formatCSV {
		return harness.WriteCSV(w, rep)
	}

	return harness.WriteText(w, rep)
}

// selectCategories resolves names, or returns every category for an empty list.
func selectCategories(names []string) ([]builder.Category, error) {
	if len(names) == 0 {
		return builder.Categories(), nil
	}
	out := make([]builder.Category, 0, len(names))
	for _, name := range names {
		c, err := builder.CategoryByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
