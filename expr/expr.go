// Package expr compiles textual expressions in the variable x into
// rootfind.Func values. Expressions are Starlark; the Starlark math module is
// predeclared, so "math.exp(x) - 3*x" or "math.pow(x, 3) - 2*x + 2" work.
//
// Starlark has no ** operator: use x*x or math.pow(x, 2).
package expr

import (
	"errors"
	"fmt"
	"strings"

	starlarkmath "go.starlark.net/lib/math"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/katalvlaran/rootfind"
)

// maxSteps bounds the Starlark execution steps of a single evaluation.
const maxSteps = 1 << 20

const fnName = "f"

var (
	// ErrCompile indicates the source is not a valid expression.
	ErrCompile = errors.New("expr: compile failed")

	// ErrNotNumber indicates the expression produced a non-numeric value.
	ErrNotNumber = errors.New("expr: result is not a number")
)

// EvalError reports a failed evaluation at a given x.
type EvalError struct {
	Src string
	X   float64
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("expr: evaluating %q at x = %g: %v", e.Src, e.X, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Expr is a compiled expression. It is not safe for concurrent use.
type Expr struct {
	src string
	fn  starlark.Value
}

// Compile parses src as a single Starlark expression in x.
func Compile(src string) (*Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrCompile)
	}
	if _, err := syntax.ParseExpr("expr", src, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	module := fmt.Sprintf("def %s(x):\n    return (%s)\n", fnName, src)
	globals, err := starlark.ExecFile(newThread(), "expr.star", module, predeclared())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	return &Expr{src: src, fn: globals[fnName]}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return e
}

// String returns the expression source.
func (e *Expr) String() string { return e.src }

// Eval computes the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	v, err := starlark.Call(newThread(), e.fn, starlark.Tuple{starlark.Float(x)}, nil)
	if err != nil {
		return 0, &EvalError{Src: e.src, X: x, Err: err}
	}
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, &EvalError{Src: e.src, X: x, Err: fmt.Errorf("%w: got %s", ErrNotNumber, v.Type())}
	}

	return f, nil
}

// Func adapts e to rootfind.Func. rootfind lets callable failures propagate,
// so an evaluation error panics with *EvalError; recover it at the caller's
// boundary.
func (e *Expr) Func() rootfind.Func {
	return func(x float64) float64 {
		y, err := e.Eval(x)
		if err != nil {
			panic(err)
		}

		return y
	}
}

func newThread() *starlark.Thread {
	th := &starlark.Thread{
		Name:  "rootfind/expr",
		Print: func(*starlark.Thread, string) {},
	}
	th.SetMaxExecutionSteps(maxSteps)

	return th
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"math": starlarkmath.Module,
	}
}
