package rootfind

import (
	"fmt"
	"strconv"
	"strings"
)

// Label layout of Result.String: labels are right-aligned to labelWidth,
// followed by labelSep and the value.
const (
	labelWidth = len("iterations")
	labelSep   = " : "
)

// Result summarises one solve attempt. It is built once by a solver and is
// read-only afterwards; the Alarm snapshot it carries is a private copy.
type Result struct {
	method     Method
	status     Convergence
	iterations int
	root       float64
	hasRoot    bool
	bound      float64
	hasBound   bool
	alarm      []string
}

// newResult snapshots alarm into a fresh Result.
func newResult(m Method, status Convergence, iterations int, alarm *Alarm) Result {
	return Result{method: m, status: status, iterations: iterations, alarm: alarm.Entries()}
}

// withRoot returns r with the root set.
func (r Result) withRoot(x float64) Result {
	r.root, r.hasRoot = x, true

	return r
}

// withBound returns r with the error bound set.
func (r Result) withBound(e float64) Result {
	r.bound, r.hasBound = e, true

	return r
}

// Method reports which solver produced r.
func (r Result) Method() Method { return r.method }

// Status reports the tri-state convergence of r.
func (r Result) Status() Convergence { return r.status }

// Converged is shorthand for r.Status() == Converged.
func (r Result) Converged() bool { return r.status == Converged }

// Iterations reports the number of refinement steps, the initial
// evaluation excluded.
func (r Result) Iterations() int { return r.iterations }

// Root returns the numerical root and whether one was produced.
func (r Result) Root() (float64, bool) { return r.root, r.hasRoot }

// Bound returns the error bound on Root and whether one was computed.
func (r Result) Bound() (float64, bool) { return r.bound, r.hasBound }

// Alarm returns a copy of the diagnostics logged during the attempt.
func (r Result) Alarm() []string {
	if len(r.alarm) == 0 {
		return nil
	}
	out := make([]string, len(r.alarm))
	copy(out, r.alarm)

	return out
}

// String renders r as a fixed multi-line block with right-aligned labels:
//
//	    method : Newton
//	 converged : true
//	iterations : 3
//	      root : 1
//	     error : 0
//	     alarm : None
func (r Result) String() string {
	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%*s%s%s\n", labelWidth, label, labelSep, value)
	}
	line("method", r.method.String())
	line("converged", r.status.String())
	line("iterations", strconv.Itoa(r.iterations))
	line("root", optional(r.root, r.hasRoot))
	line("error", optional(r.bound, r.hasBound))
	line("alarm", renderAlarm(r.alarm))

	return sb.String()
}

func optional(v float64, ok bool) string {
	if !ok {
		return "None"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
