package rootfind

// Bisection finds a root of f inside [a, b] by repeated halving.
//
// Algorithm:
//  1. Reject a > b (ErrInsensibleInterval).
//  2. Record sa = sign(f(a)), sb = sign(f(b)).
//  3. If sa == sb != 0, try exactly one correction at m = (a+b)/2: when
//     sign(f(m)) == sa the attempt fails (ErrSameSign), otherwise b = m.
//     The correction counts as iteration 1.
//  4. An endpoint with f == 0 is returned as an exact root (bound 0).
//  5. While b-a > 2·epsilon, halve the bracket keeping the half whose
//     endpoints differ in sign. The comparison is always against the
//     original sa; a only ever moves to points of that sign. Halving also
//     stops once the midpoint no longer falls strictly inside [a, b], so an
//     epsilon below the float spacing near the root still terminates.
//  6. Return the last midpoint with bound (b-a)/2.
//
// Signs are compared instead of multiplying f(a)·f(m), which would
// overflow or underflow for extreme magnitudes.
//
// alarm receives soft diagnostics; nil means a private log.
//
// Complexity: O(log2((b-a)/epsilon)) evaluations of f.
func Bisection(f Func, a, b, epsilon float64, alarm *Alarm) (Result, error) {
	if alarm == nil {
		alarm = NewAlarm()
	}
	if a > b {
		return Result{}, alarm.Fatal(ErrInsensibleInterval)
	}

	var (
		sa         = sign(f(a))
		sb         = sign(f(b))
		iterations int
	)

	// One-shot correction of a bracket without a sign change.
	if sa == sb && sa != 0 {
		m := (a + b) / 2
		sm := sign(f(m))
		iterations = 1
		if sm == sa {
			return Result{}, alarm.Fatal(ErrSameSign)
		}
		b, sb = m, sm
		alarm.Append("Given endpoints with same sign! Correcting attempt succeeded!")
	}

	if sa == 0 {
		return newResult(MethodBisection, Converged, iterations, alarm).withRoot(a).withBound(0), nil
	}
	if sb == 0 {
		return newResult(MethodBisection, Converged, iterations, alarm).withRoot(b).withBound(0), nil
	}

	m := (a + b) / 2
	for b-a > 2*epsilon {
		m = (a + b) / 2
		// a and b are adjacent floats: the bracket cannot shrink further.
		if !(a < m && m < b) {
			break
		}
		sm := sign(f(m))
		iterations++
		if sm == 0 {
			a, b = m, m
			break
		}
		if sm != sa {
			b = m
		} else {
			a = m
		}
	}

	return newResult(MethodBisection, Converged, iterations, alarm).withRoot(m).withBound((b - a) / 2), nil
}

// sign maps positive → +1, negative → −1, and zero (or NaN) → 0.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
