package rootfind

import (
	"fmt"
	"math"
)

// Newton finds a root of f starting from x0 with the iteration
//
//	x_{k+1} = x_k − f(x_k) / fprime(x_k)
//
// Contracts:
//   - fprime must be non-nil (ErrNoDerivative otherwise).
//   - x0 == nil starts from 0 and logs the substitution.
//   - loopTol bounds the iteration count; the attempt fails once it is exceeded.
//
// Per step, in order:
//   - f(x_k) == 0 exactly → converged, root x_k, bound 0.
//   - fprime(x_k) == 0 → MachineEpsilon is added to it; logged once per attempt.
//   - Cycle: x_{k+1} within epsilon of any visited point other than x_k →
//     failed, no root, no bound.
//   - Iterations > loopTol → failed, root x_{k+1}, no bound.
//   - |x_{k+1} − x_k| ≤ epsilon → converged, root x_k, bound |x_{k+1} − x_k|/2.
//
// The visited history is scanned linearly, O(n²) over the attempt; evaluating
// f and fprime is assumed to dominate.
//
// Complexity: at most loopTol+1 evaluations of f and fprime.
func Newton(f, fprime Func, x0 *float64, epsilon float64, loopTol int, alarm *Alarm) (Result, error) {
	if alarm == nil {
		alarm = NewAlarm()
	}
	if fprime == nil {
		return Result{}, alarm.Fatal(ErrNoDerivative)
	}

	var x float64
	if x0 == nil {
		alarm.Append("No initial value given! Set as 0!")
	} else {
		x = *x0
	}

	var (
		visited    = []float64{x}
		iterations int
		singular   bool
	)
	for {
		fx := f(x)
		if fx == 0 {
			return newResult(MethodNewton, Converged, iterations, alarm).withRoot(x).withBound(0), nil
		}

		d := fprime(x)
		if d == 0 {
			if !singular {
				alarm.Append("Derivative of f equals zero when iterating! Add epsilon!")
				singular = true
			}
			d += MachineEpsilon
		}
		next := x - fx/d

		// The last visited point is x itself; closeness to it is convergence,
		// not a cycle.
		for i, p := range visited[:len(visited)-1] {
			if math.Abs(p-next) <= epsilon {
				alarm.Append(fmt.Sprintf("Cycle exists during solving! x_%d = %g is revisited.", i, p))

				return newResult(MethodNewton, Failed, iterations, alarm), nil
			}
		}

		visited = append(visited, next)
		iterations++

		if iterations > loopTol {
			alarm.Append("Didn't converge under the limit of numbers of iteration! The root is the latest approximation.")

			return newResult(MethodNewton, Failed, iterations, alarm).withRoot(next), nil
		}

		if step := math.Abs(next - x); step <= epsilon {
			return newResult(MethodNewton, Converged, iterations, alarm).withRoot(x).withBound(step / 2), nil
		}
		x = next
	}
}
