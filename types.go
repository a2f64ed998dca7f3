package rootfind

import (
	"errors"
	"strings"
)

// Func is a real scalar function of one real variable.
// Both the objective f and its derivative fprime have this shape.
type Func func(x float64) float64

// MachineEpsilon is the gap between 1.0 and the next representable float64.
const MachineEpsilon = 0x1p-52

// Defaults used by Solve when the corresponding option is not given.
const (
	// DefaultEpsilon is the convergence tolerance: 100 × MachineEpsilon.
	DefaultEpsilon = 100 * MachineEpsilon

	// DefaultLoopTol caps the number of Newton iterations.
	DefaultLoopTol = 1000

	// DefaultPlotLow and DefaultPlotHigh bound the plotting interval used
	// when neither an explicit interval nor a bracket is supplied.
	DefaultPlotLow  = -5.0
	DefaultPlotHigh = 5.0
)

// Method tags the solver that produced a Result.
//
//   - MethodInvalid:   no solver could be selected (zero value).
//   - MethodBisection: bracket halving.
//   - MethodNewton:    derivative-based iteration.
type Method int

const (
	// MethodInvalid marks an unrecognised or unresolvable method.
	MethodInvalid Method = iota

	// MethodBisection selects the bracket-halving solver.
	MethodBisection

	// MethodNewton selects the derivative-based solver.
	MethodNewton
)

// String returns the display name of m.
func (m Method) String() string {
	switch m {
	case MethodBisection:
		return "Bisection"
	case MethodNewton:
		return "Newton"
	default:
		return "Invalid"
	}
}

// ParseMethod maps a case-insensitive name onto a Method.
// Unknown names map to MethodInvalid; Solve turns MethodInvalid into an
// "Illegal operation!" result rather than an error.
func ParseMethod(name string) Method {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bisection":
		return MethodBisection
	case "newton":
		return MethodNewton
	default:
		return MethodInvalid
	}
}

// Convergence is the tri-state outcome of a solve attempt.
type Convergence int

const (
	// Unknown means no solver ran to completion (zero value).
	Unknown Convergence = iota

	// Converged means the tolerance was met.
	Converged

	// Failed means the solver stopped without meeting the tolerance.
	Failed
)

// String returns "true", "false" or "unknown".
func (c Convergence) String() string {
	switch c {
	case Converged:
		return "true"
	case Failed:
		return "false"
	default:
		return "unknown"
	}
}

// Sentinel errors. Every fatal input error returned by this package is an
// *InputError that matches ErrInvalidInput and exactly one of the causes below
// via errors.Is.
var (
	// ErrInvalidInput is the umbrella for all fatal input errors.
	ErrInvalidInput = errors.New("rootfind: invalid input")

	// ErrInsensibleInterval indicates a bracket with a > b.
	ErrInsensibleInterval = errors.New("rootfind: insensible interval")

	// ErrSameSign indicates the bracket endpoints share a sign and the
	// one-shot midpoint correction did not help.
	ErrSameSign = errors.New("rootfind: the values of the function at the endpoints of the bracket aren't of opposite signs, correcting attempt failed")

	// ErrNoBracket indicates Bisection was requested without a bracket.
	ErrNoBracket = errors.New("rootfind: no bracket given when solving with Bisection method")

	// ErrNoDerivative indicates Newton was requested without fprime.
	ErrNoDerivative = errors.New("rootfind: no derivative given when solving with Newton method")

	// ErrBadPlotInterval indicates a plotting interval with low > high.
	ErrBadPlotInterval = errors.New("rootfind: illegal plotting interval")
)

// InputError is a fatal input error. It carries every diagnostic logged
// before the failure so the caller sees the whole session in one message.
type InputError struct {
	// Alarm holds the diagnostics recorded before Cause was raised.
	Alarm []string

	// Cause is one of the package sentinels.
	Cause error
}

// Error joins the recorded diagnostics and the cause, one per line.
func (e *InputError) Error() string {
	var sb strings.Builder
	for _, msg := range e.Alarm {
		sb.WriteString(msg)
		sb.WriteByte('\n')
	}
	sb.WriteString(e.Cause.Error())

	return sb.String()
}

// Unwrap exposes both ErrInvalidInput and the specific cause.
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Cause}
}
