package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/plot"
)

func newPlotCommand() *cobra.Command {
	var (
		function string
		interval []float64
		width    int
		height   int
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot a function as an ASCII chart",
		Example: `  rootfind plot --f "math.sin(x)" --interval -3.2,3.2
  rootfind plot --f "x*x - 2" --width 40 --height 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(interval) != 2 {
				return fmt.Errorf("--interval needs exactly two values, got %d", len(interval))
			}
			f, err := expr.Compile(function)
			if err != nil {
				return fmt.Errorf("function: %w", err)
			}

			log.Debug().Str("f", f.String()).Floats64("interval", interval).Msg("Plotting")

			if width < 2 || height < 2 {
				return fmt.Errorf("chart size %dx%d is too small", width, height)
			}
			p := plot.New(cmd.OutOrStdout(), plot.WithSize(width, height))
			defer recoverEval(&err)

			return p.Plot(f.Func(), interval[0], interval[1])
		},
	}

	cmd.Flags().StringVar(&function, "f", "", "function of x (Starlark expression)")
	cmd.Flags().Float64SliceVar(&interval, "interval", []float64{rootfind.DefaultPlotLow, rootfind.DefaultPlotHigh}, "interval lo,hi")
	cmd.Flags().IntVar(&width, "width", plot.DefaultWidth, "chart width in characters")
	cmd.Flags().IntVar(&height, "height", plot.DefaultHeight, "chart height in characters")
	_ = cmd.MarkFlagRequired("f")

	return cmd
}
