// Package rootfind - unified dispatcher for the root solvers.
//
// Solve is the canonical entry point. It:
//   - allocates a fresh Alarm for the call (never shared across calls),
//   - optionally forwards a plot request to the configured Plotter,
//   - resolves the method once from the supplied options,
//   - routes to Bisection or Newton, retrying Newton once from x1.
package rootfind

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Plotter is the plotting collaborator. Solve calls it at most once, before
// any solver runs.
type Plotter interface {
	Plot(f Func, lo, hi float64) error
}

// Solve finds a root of f according to opts.
//
// Method resolution (when WithMethod is absent):
//   - a bracket was given   → MethodBisection,
//   - else a derivative     → MethodNewton,
//   - else                  → MethodInvalid.
//
// Automatic choices are logged in the Alarm.
//
// Dispatch:
//   - MethodBisection → Bisection over the bracket (ErrNoBracket without one).
//   - MethodNewton    → Newton from x0; if it did not converge and x1 was
//     given, one more attempt from x1 sharing the same Alarm. The second
//     Result is returned whatever its outcome.
//   - MethodInvalid   → a Result whose Alarm is exactly ["Illegal operation!"].
//
// Errors: *InputError for fatal input conditions (see types.go); a wrapped
// plotter error if plotting fails. Soft failures come back as a Result with
// Status() == Failed.
func Solve(f Func, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	log := o.logger

	if o.plotter != nil {
		if err := requestPlot(f, &o); err != nil {
			return Result{}, err
		}
	}

	alarm := NewAlarm()
	method := resolveMethod(&o, alarm)
	log.Debug().Stringer("method", method).Bool("explicit", o.methodSet).Msg("method resolved")

	var (
		res Result
		err error
	)
	switch method {
	case MethodBisection:
		if !o.hasBracket {
			return Result{}, alarm.Fatal(ErrNoBracket)
		}
		res, err = Bisection(f, o.a, o.b, o.epsilon, alarm)

	case MethodNewton:
		res, err = Newton(f, o.fprime, startPtr(o.x0, o.hasX0), o.epsilon, o.loopTol, alarm)
		if err == nil && res.Status() != Converged && o.hasX1 {
			alarm.Append(fmt.Sprintf(
				"First attempt with x0 = %g failed! Here comes the second try with the initial value x1 = %g",
				o.x0, o.x1))
			log.Debug().Float64("x0", o.x0).Float64("x1", o.x1).Msg("retrying newton")
			res, err = Newton(f, o.fprime, &o.x1, o.epsilon, o.loopTol, alarm)
		}

	default:
		illegal := NewAlarm()
		illegal.Append("Illegal operation!")
		log.Debug().Msg("no method could be resolved")

		return newResult(MethodInvalid, Unknown, 0, illegal), nil
	}
	if err != nil {
		log.Debug().Err(err).Stringer("method", method).Msg("solve aborted")

		return Result{}, err
	}

	logOutcome(log, res)

	return res, nil
}

// resolveMethod picks the solver. It runs once per Solve call.
func resolveMethod(o *Options, alarm *Alarm) Method {
	if o.methodSet {
		return o.method
	}
	switch {
	case o.hasBracket:
		alarm.Append("No method given, automatically chosen as Bisection!")
		return MethodBisection
	case o.fprime != nil:
		alarm.Append("No method given, automatically chosen as Newton!")
		return MethodNewton
	default:
		return MethodInvalid
	}
}

// requestPlot resolves the plotting interval and forwards f to the plotter.
// Interval precedence: explicit interval, bracket, default [-5, 5].
func requestPlot(f Func, o *Options) error {
	lo, hi := o.plotLo, o.plotHi
	if !o.hasPlotInterval {
		if o.hasBracket {
			lo, hi = o.a, o.b
		} else {
			lo, hi = DefaultPlotLow, DefaultPlotHigh
		}
		o.logger.Info().Float64("low", lo).Float64("high", hi).Msg("plotting interval not given, using default")
	}
	if lo > hi {
		return NewAlarm().Fatal(ErrBadPlotInterval)
	}
	if err := o.plotter.Plot(f, lo, hi); err != nil {
		return fmt.Errorf("rootfind: plot: %w", err)
	}

	return nil
}

func startPtr(x float64, ok bool) *float64 {
	if !ok {
		return nil
	}

	return &x
}

func logOutcome(log zerolog.Logger, res Result) {
	ev := log.Debug().
		Stringer("method", res.Method()).
		Stringer("converged", res.Status()).
		Int("iterations", res.Iterations()).
		Int("alarms", len(res.alarm))
	if x, ok := res.Root(); ok {
		ev = ev.Float64("root", x)
	}
	if e, ok := res.Bound(); ok {
		ev = ev.Float64("error", e)
	}
	ev.Msg("solve finished")
}
