// Package rootfind finds a numerical root of a scalar function of one real
// variable with either the Bisection method or Newton's method, and reports
// how the attempt went.
//
// 🚀 What does a solve return?
//
//	A Result carrying:
//		• the method that ran (Bisection, Newton, or Invalid)
//		• a tri-state convergence flag (true / false / unknown)
//		• the number of refinement steps
//		• the root and an error bound, each optional
//		• the alarm: every diagnostic condition met while solving
//
// ✨ Key features:
//   - sign-based bracket tests (no f(a)·f(b) products to overflow)
//   - one-shot correction of a same-sign bracket via its midpoint
//   - Newton with derivative-singularity guard and cycle detection
//   - automatic method selection and a single Newton retry from x1
//   - optional plotting through a Plotter collaborator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	fp := func(x float64) float64 { return 2 * x }
//
//	res, err := rootfind.Solve(f,
//		rootfind.WithDerivative(fp),
//		rootfind.WithStart(1),
//		rootfind.WithRetryStart(3),
//	)
//	if err != nil {
//		// *InputError: malformed bracket, missing derivative, ...
//	}
//	fmt.Print(res)
//
// Errors come in two tiers. Malformed input (a > b, no derivative for
// Newton, a bracket without a sign change that cannot be corrected, a
// reversed plot interval) aborts with an *InputError that matches
// ErrInvalidInput. Numeric trouble (cycles, the iteration ceiling, a zero
// derivative) is recorded in the alarm and the Result reports
// Status() == Failed; callers inspect the Result rather than the error.
//
// Subpackages:
//
//	plot/          ASCII Plotter implementation
//	expr/          Starlark expressions compiled into Func
//	config/        YAML job files for the CLI
//	cmd/rootfind/  command-line front end
package rootfind
