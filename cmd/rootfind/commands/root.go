package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "rootfind",
		Short: "rootfind - scalar root finding with Bisection and Newton's method",
		Long: `rootfind finds a root of a scalar function of one real variable.

Functions are Starlark expressions in x; the math module is available:
  x*x - 2
  math.exp(x) - 3*x
  math.pow(x, 3) - 2*x + 2

Methods:
  - Bisection: needs --bracket a,b with a sign change (one midpoint
    correction is attempted otherwise)
  - Newton: needs --fprime; --x0 and an optional retry start --x1`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if g.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML job file")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable coloured output")

	rootCmd.AddCommand(newSolveCommand(g))
	rootCmd.AddCommand(newPlotCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, buildDate))

	return rootCmd
}

func newVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Debug().Str("version", version).Msg("version requested")
			fmt.Fprintf(cmd.OutOrStdout(), "rootfind %s (commit: %s, built: %s)\n", version, commit, buildDate)
		},
	}
}
