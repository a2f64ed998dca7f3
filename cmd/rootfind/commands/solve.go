package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind"
	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/plot"
)

var (
	convergedColor = color.New(color.FgGreen, color.Bold)
	failedColor    = color.New(color.FgRed, color.Bold)
	unknownColor   = color.New(color.FgYellow, color.Bold)
)

// solveFlags mirrors config.Job on the command line.
type solveFlags struct {
	function     string
	derivative   string
	method       string
	bracket      []float64
	x0, x1       float64
	epsilon      float64
	loopTol      int
	plot         bool
	plotInterval []float64
}

func newSolveCommand(g *globalFlags) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a root of a function",
		Long: `Find a root of a function with Bisection or Newton's method.

Flags override the values of the --config job file. Without --method the
solver is picked automatically: a bracket selects Bisection, a derivative
selects Newton.`,
		Example: `  # Bisection on [0.5, 2]
  rootfind solve --f "x*x - 1" --bracket 0.5,2

  # Newton with a retry start
  rootfind solve --f "math.pow(x, 3) - 2*x + 2" --fprime "3*x*x - 2" --x0 0 --x1 -3

  # From a job file, plotting first
  rootfind solve -c job.yaml --plot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := loadJob(cmd, g.configPath, &sf)
			if err != nil {
				return err
			}

			return runSolve(cmd.OutOrStdout(), job)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&sf.function, "f", "", "function of x (Starlark expression)")
	fl.StringVar(&sf.derivative, "fprime", "", "derivative of f (Starlark expression)")
	fl.StringVarP(&sf.method, "method", "m", "", "bisection or newton (default: automatic)")
	fl.Float64SliceVar(&sf.bracket, "bracket", nil, "bracket a,b for Bisection")
	fl.Float64Var(&sf.x0, "x0", 0, "Newton start value")
	fl.Float64Var(&sf.x1, "x1", 0, "Newton retry start value")
	fl.Float64Var(&sf.epsilon, "epsilon", rootfind.DefaultEpsilon, "convergence tolerance")
	fl.IntVar(&sf.loopTol, "loop-tol", rootfind.DefaultLoopTol, "Newton iteration ceiling")
	fl.BoolVar(&sf.plot, "plot", false, "plot f before solving")
	fl.Float64SliceVar(&sf.plotInterval, "plot-interval", nil, "plot interval lo,hi")

	return cmd
}

// loadJob merges the job file (if any) with explicitly set flags.
func loadJob(cmd *cobra.Command, configPath string, sf *solveFlags) (*config.Job, error) {
	job := &config.Job{}
	if configPath != "" {
		var err error
		if job, err = config.Load(configPath); err != nil {
			return nil, err
		}
		log.Debug().Str("path", configPath).Msg("job file loaded")
	}

	fl := cmd.Flags()
	if fl.Changed("f") {
		job.Function = sf.function
	}
	if fl.Changed("fprime") {
		job.Derivative = sf.derivative
	}
	if fl.Changed("method") {
		job.Method = sf.method
	}
	if fl.Changed("bracket") {
		job.Bracket = sf.bracket
	}
	if fl.Changed("x0") {
		job.X0 = &sf.x0
	}
	if fl.Changed("x1") {
		job.X1 = &sf.x1
	}
	if fl.Changed("epsilon") || job.Epsilon == 0 {
		job.Epsilon = sf.epsilon
	}
	if fl.Changed("loop-tol") || job.LoopTol == 0 {
		job.LoopTol = sf.loopTol
	}
	if fl.Changed("plot") {
		job.Plot.Enabled = sf.plot
	}
	if fl.Changed("plot-interval") {
		job.Plot.Interval = sf.plotInterval
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// runSolve compiles the job's expressions, solves and prints the result.
func runSolve(w io.Writer, job *config.Job) error {
	f, err := expr.Compile(job.Function)
	if err != nil {
		return fmt.Errorf("function: %w", err)
	}
	var fprime rootfind.Func
	if job.Derivative != "" {
		d, err := expr.Compile(job.Derivative)
		if err != nil {
			return fmt.Errorf("derivative: %w", err)
		}
		fprime = d.Func()
	}

	opts := job.Options(fprime, plot.New(w))
	opts = append(opts, rootfind.WithLogger(log.Logger))

	log.Info().
		Str("f", f.String()).
		Str("fprime", job.Derivative).
		Str("method", job.Method).
		Msg("Solving")

	res, err := solveRecovering(f.Func(), opts)
	if err != nil {
		return err
	}

	printResult(w, res)

	return nil
}

// solveRecovering turns expression evaluation panics back into errors.
func solveRecovering(f rootfind.Func, opts []rootfind.Option) (res rootfind.Result, err error) {
	defer recoverEval(&err)

	return rootfind.Solve(f, opts...)
}

// recoverEval stores a recovered *expr.EvalError in *err. Any other panic
// is re-raised.
func recoverEval(err *error) {
	r := recover()
	if r == nil {
		return
	}
	var ee *expr.EvalError
	rerr, ok := r.(error)
	if !ok || !errors.As(rerr, &ee) {
		panic(r)
	}
	*err = ee
}

func printResult(w io.Writer, res rootfind.Result) {
	switch res.Status() {
	case rootfind.Converged:
		convergedColor.Fprintln(w, "converged")
	case rootfind.Failed:
		failedColor.Fprintln(w, "did not converge")
	default:
		unknownColor.Fprintln(w, "no solver ran")
	}
	fmt.Fprint(w, res.String())
}
