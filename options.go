// Package rootfind: functional configuration for Solve. This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies setters over documented defaults.
//
// Optional inputs (bracket, derivative, start values, plot interval) are
// tracked with presence flags so that 0 is a legitimate value everywhere.
package rootfind

import (
	"math"

	"github.com/rs/zerolog"
)

// Internal panic messages.
const (
	panicEpsilonInvalid = "rootfind: WithEpsilon: epsilon must be finite and > 0"
	panicLoopTolInvalid = "rootfind: WithLoopTol: loopTol must be > 0"
	panicBracketNaN     = "rootfind: WithBracket: endpoints must not be NaN"
	panicPlotterNil     = "rootfind: WithPlotter: plotter must be non-nil"
)

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options is the effective configuration of one Solve call. Fields are
// unexported; callers build it through WithX setters.
type Options struct {
	method    Method
	methodSet bool

	a, b       float64
	hasBracket bool

	fprime Func

	x0, x1       float64
	hasX0, hasX1 bool

	epsilon float64
	loopTol int

	plotter         Plotter
	plotLo, plotHi  float64
	hasPlotInterval bool

	logger zerolog.Logger
}

// WithMethod forces the solver. Passing MethodInvalid yields an
// "Illegal operation!" result.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method, o.methodSet = m, true }
}

// WithBracket supplies the interval [a, b] for Bisection. a > b is not
// rejected here; Bisection reports it as ErrInsensibleInterval.
func WithBracket(a, b float64) Option {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic(panicBracketNaN)
	}

	return func(o *Options) { o.a, o.b, o.hasBracket = a, b, true }
}

// WithDerivative supplies fprime for Newton.
func WithDerivative(fprime Func) Option {
	return func(o *Options) { o.fprime = fprime }
}

// WithStart sets the first Newton start value x0.
func WithStart(x0 float64) Option {
	return func(o *Options) { o.x0, o.hasX0 = x0, true }
}

// WithRetryStart sets the secondary start value x1, tried once when the
// attempt from x0 does not converge.
func WithRetryStart(x1 float64) Option {
	return func(o *Options) { o.x1, o.hasX1 = x1, true }
}

// WithEpsilon sets the convergence tolerance.
//
// Panics when eps is not finite or not positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithLoopTol caps the number of Newton iterations.
//
// Panics when n <= 0.
func WithLoopTol(n int) Option {
	if n <= 0 {
		panic(panicLoopTolInvalid)
	}

	return func(o *Options) { o.loopTol = n }
}

// WithPlotter requests a plot of f before solving.
//
// Panics when p is nil.
func WithPlotter(p Plotter) Option {
	if p == nil {
		panic(panicPlotterNil)
	}

	return func(o *Options) { o.plotter = p }
}

// WithPlotInterval sets the plotting interval. Only meaningful together with
// WithPlotter; lo > hi is reported by Solve as ErrBadPlotInterval.
func WithPlotInterval(lo, hi float64) Option {
	return func(o *Options) { o.plotLo, o.plotHi, o.hasPlotInterval = lo, hi, true }
}

// WithLogger routes Solve's structured events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		epsilon: DefaultEpsilon,
		loopTol: DefaultLoopTol,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
