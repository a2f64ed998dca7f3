package rootfind_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind"
)

func cyclic(x float64) float64      { return x*x*x - 2*x + 2 }
func cyclicPrime(x float64) float64 { return 3*x*x - 2 }

// cyclicRoot is the single real root of x³ − 2x + 2.
const cyclicRoot = -1.7692923542386314

// recordingPlotter captures plot requests.
type recordingPlotter struct {
	calls  int
	lo, hi float64
	err    error
}

func (p *recordingPlotter) Plot(_ rootfind.Func, lo, hi float64) error {
	p.calls++
	p.lo, p.hi = lo, hi

	return p.err
}

// TestSolve_IllegalOperation covers the "no recognised method" branch.
func TestSolve_IllegalOperation(t *testing.T) {
	res, err := rootfind.Solve(square)
	require.NoError(t, err)

	assert.Equal(t, rootfind.MethodInvalid, res.Method())
	assert.Equal(t, rootfind.Unknown, res.Status())
	assert.Equal(t, 0, res.Iterations())
	_, hasRoot := res.Root()
	_, hasBound := res.Bound()
	assert.False(t, hasRoot)
	assert.False(t, hasBound)
	assert.Equal(t, []string{"Illegal operation!"}, res.Alarm())
}

// TestSolve_ExplicitInvalid ignores other inputs once MethodInvalid is forced.
func TestSolve_ExplicitInvalid(t *testing.T) {
	res, err := rootfind.Solve(square,
		rootfind.WithMethod(rootfind.ParseMethod("secant")),
		rootfind.WithBracket(0, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Illegal operation!"}, res.Alarm())
}

// TestSolve_AutoBisection prefers the bracket and logs the choice.
func TestSolve_AutoBisection(t *testing.T) {
	res, err := rootfind.Solve(square,
		rootfind.WithBracket(0.5, 2),
		rootfind.WithDerivative(twoX), // bracket takes precedence
		rootfind.WithEpsilon(1e-12),
	)
	require.NoError(t, err)
	assert.Equal(t, rootfind.MethodBisection, res.Method())
	assert.True(t, res.Converged())
	assert.Equal(t, []string{"No method given, automatically chosen as Bisection!"}, res.Alarm())

	root, _ := res.Root()
	assert.InDelta(t, 1.0, root, 1e-11)
}

// TestSolve_AutoNewton selects Newton from the derivative alone.
func TestSolve_AutoNewton(t *testing.T) {
	res, err := rootfind.Solve(square, rootfind.WithDerivative(twoX), rootfind.WithStart(3))
	require.NoError(t, err)
	assert.Equal(t, rootfind.MethodNewton, res.Method())
	assert.True(t, res.Converged())
	assert.Equal(t, []string{"No method given, automatically chosen as Newton!"}, res.Alarm())
}

// TestSolve_BisectionWithoutBracket is a fatal input error.
func TestSolve_BisectionWithoutBracket(t *testing.T) {
	_, err := rootfind.Solve(square, rootfind.WithMethod(rootfind.MethodBisection))
	assert.ErrorIs(t, err, rootfind.ErrNoBracket)
	assert.ErrorIs(t, err, rootfind.ErrInvalidInput)
}

// TestSolve_NewtonWithoutDerivative is a fatal input error.
func TestSolve_NewtonWithoutDerivative(t *testing.T) {
	_, err := rootfind.Solve(square, rootfind.WithMethod(rootfind.MethodNewton), rootfind.WithStart(1))
	assert.ErrorIs(t, err, rootfind.ErrNoDerivative)
}

// TestSolve_FatalCarriesDiagnostics joins the auto-selection note and the cause.
func TestSolve_FatalCarriesDiagnostics(t *testing.T) {
	_, err := rootfind.Solve(square, rootfind.WithBracket(2, 1))
	require.Error(t, err)
	assert.Equal(t,
		"No method given, automatically chosen as Bisection!\nrootfind: insensible interval",
		err.Error())
}

// TestSolve_NewtonRetrySucceeds retries from x1 after a cycle from x0.
func TestSolve_NewtonRetrySucceeds(t *testing.T) {
	res, err := rootfind.Solve(cyclic,
		rootfind.WithMethod(rootfind.MethodNewton),
		rootfind.WithDerivative(cyclicPrime),
		rootfind.WithStart(0),
		rootfind.WithRetryStart(-3),
	)
	require.NoError(t, err)
	assert.True(t, res.Converged())
	root, _ := res.Root()
	assert.InDelta(t, cyclicRoot, root, 1e-9)

	alarm := res.Alarm()
	require.Len(t, alarm, 2, "both attempts share one log")
	assert.Contains(t, alarm[0], "Cycle exists during solving!")
	assert.Equal(t,
		"First attempt with x0 = 0 failed! Here comes the second try with the initial value x1 = -3",
		alarm[1])
}

// TestSolve_NewtonRetryFailsToo returns the second result whatever its outcome.
func TestSolve_NewtonRetryFailsToo(t *testing.T) {
	res, err := rootfind.Solve(cyclic,
		rootfind.WithMethod(rootfind.MethodNewton),
		rootfind.WithDerivative(cyclicPrime),
		rootfind.WithStart(0),
		rootfind.WithRetryStart(1),
	)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Failed, res.Status())
	assert.Len(t, res.Alarm(), 3, "cycle, retry note, cycle; no third attempt")
}

// TestSolve_NoRetryWhenConverged skips x1 once x0 converges.
func TestSolve_NoRetryWhenConverged(t *testing.T) {
	res, err := rootfind.Solve(square,
		rootfind.WithMethod(rootfind.MethodNewton),
		rootfind.WithDerivative(twoX),
		rootfind.WithStart(3),
		rootfind.WithRetryStart(-3),
	)
	require.NoError(t, err)
	root, _ := res.Root()
	assert.InDelta(t, 1.0, root, 1e-12, "x0 attempt kept")
	assert.Empty(t, res.Alarm())
}

// TestSolve_RetryFromZero treats x1 = 0 as supplied.
func TestSolve_RetryFromZero(t *testing.T) {
	res, err := rootfind.Solve(cyclic,
		rootfind.WithMethod(rootfind.MethodNewton),
		rootfind.WithDerivative(cyclicPrime),
		rootfind.WithStart(1),
		rootfind.WithRetryStart(0),
	)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Failed, res.Status())
	assert.Len(t, res.Alarm(), 3)
}

// TestSolve_Idempotent runs the same request twice; no state leaks between calls.
func TestSolve_Idempotent(t *testing.T) {
	run := func() rootfind.Result {
		res, err := rootfind.Solve(cyclic,
			rootfind.WithDerivative(cyclicPrime),
			rootfind.WithStart(0),
			rootfind.WithRetryStart(-3),
		)
		require.NoError(t, err)

		return res
	}
	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Len(t, second.Alarm(), 3)
}

// TestSolve_PlotIntervalResolution checks explicit → bracket → default precedence.
func TestSolve_PlotIntervalResolution(t *testing.T) {
	p := &recordingPlotter{}
	_, err := rootfind.Solve(square, rootfind.WithPlotter(p), rootfind.WithBracket(0.5, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, [2]float64{0.5, 2}, [2]float64{p.lo, p.hi})

	p = &recordingPlotter{}
	_, err = rootfind.Solve(square, rootfind.WithPlotter(p))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-5, 5}, [2]float64{p.lo, p.hi})

	p = &recordingPlotter{}
	_, err = rootfind.Solve(square,
		rootfind.WithPlotter(p),
		rootfind.WithPlotInterval(-2, 2),
		rootfind.WithBracket(0.5, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-2, 2}, [2]float64{p.lo, p.hi})
}

// TestSolve_BadPlotInterval is fatal and the plotter is never called.
func TestSolve_BadPlotInterval(t *testing.T) {
	p := &recordingPlotter{}
	_, err := rootfind.Solve(square, rootfind.WithPlotter(p), rootfind.WithPlotInterval(3, 1))
	assert.ErrorIs(t, err, rootfind.ErrBadPlotInterval)
	assert.ErrorIs(t, err, rootfind.ErrInvalidInput)
	assert.Equal(t, 0, p.calls)

	// A reversed bracket doubles as a reversed plot interval.
	_, err = rootfind.Solve(square, rootfind.WithPlotter(p), rootfind.WithBracket(3, 1))
	assert.ErrorIs(t, err, rootfind.ErrBadPlotInterval)
}

// TestSolve_PlotterError is wrapped and aborts the solve.
func TestSolve_PlotterError(t *testing.T) {
	boom := errors.New("boom")
	_, err := rootfind.Solve(square,
		rootfind.WithPlotter(&recordingPlotter{err: boom}),
		rootfind.WithBracket(0.5, 2),
	)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, rootfind.ErrInvalidInput)
}

// TestSolve_Logger emits structured events to the configured logger.
func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := rootfind.Solve(square, rootfind.WithBracket(0.5, 2), rootfind.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"solve finished"`)
	assert.Contains(t, buf.String(), `"method":"Bisection"`)
}

// TestSolve_OptionPanics guards programmer errors in option constructors.
func TestSolve_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { rootfind.WithEpsilon(0) })
	assert.Panics(t, func() { rootfind.WithEpsilon(-1) })
	assert.Panics(t, func() { rootfind.WithLoopTol(0) })
	assert.Panics(t, func() { rootfind.WithPlotter(nil) })
	assert.NotPanics(t, func() { rootfind.WithEpsilon(1e-3) })
}

// TestSolve_LoopTolForwarded reaches Newton through the dispatcher.
func TestSolve_LoopTolForwarded(t *testing.T) {
	half := func(float64) float64 { return 0.5 }
	res, err := rootfind.Solve(square,
		rootfind.WithDerivative(half),
		rootfind.WithStart(10),
		rootfind.WithLoopTol(7),
	)
	require.NoError(t, err)
	assert.Equal(t, rootfind.Failed, res.Status())
	assert.Equal(t, 8, res.Iterations())
}

// TestParseMethod maps names case-insensitively.
func TestParseMethod(t *testing.T) {
	assert.Equal(t, rootfind.MethodBisection, rootfind.ParseMethod("Bisection"))
	assert.Equal(t, rootfind.MethodNewton, rootfind.ParseMethod(" newton "))
	assert.Equal(t, rootfind.MethodInvalid, rootfind.ParseMethod(""))
	assert.Equal(t, "Invalid", rootfind.MethodInvalid.String())
}

// TestSolve_BisectionTinyEpsilon accepts an epsilon finer than float
// spacing and still returns a bracketed root.
func TestSolve_BisectionTinyEpsilon(t *testing.T) {
	two := func(x float64) float64 { return x*x - 2 }
	res, err := rootfind.Solve(two,
		rootfind.WithBracket(1, 2),
		rootfind.WithEpsilon(1e-20),
	)
	require.NoError(t, err)

	assert.Equal(t, rootfind.MethodBisection, res.Method())
	assert.True(t, res.Converged())
	root, _ := res.Root()
	assert.InDelta(t, 1.4142135623730951, root, 4e-16)
}
