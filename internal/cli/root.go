package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is reported by --version; main may override it via ldflags.
var Version = "dev"

// Execute builds the command tree and runs it with ctx.
// Cancelling ctx aborts long sweeps; the returned error then wraps
// context.Canceled.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd(os.Stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newRootCmd assembles the command tree. Logs go to logOut; command output
// goes to cmd.OutOrStdout().
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "densegraph",
		Short:         "Dense-matrix graph algorithms and their empirical measurement",
		Long:          `densegraph runs shortest-path, minimum-spanning-tree and traversal algorithms on dense weight matrices, and measures their running time across families of generated graphs.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newListCmd())

	return root
}
