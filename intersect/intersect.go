package intersect

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvnum/newton"
)

// Difference returns the evaluator of d(x) = g1(x) - g2(x) together with
// its derivative d'(x) = g1'(x) - g2'(x).
func Difference(g1, g2 newton.Evaluator) newton.Evaluator {
	return func(x float64) (float64, float64) {
		v1, d1 := g1(x)
		v2, d2 := g2(x)

		return v1 - v2, d1 - d2
	}
}

// Intersect returns a point where g1 and g2 meet, starting Newton's method at x0.
// The iteration count is discarded. Solver errors (ErrZeroDerivative,
// ErrNonFinite, ErrBadOptions) propagate unchanged; as with newton.Solve an
// exhausted iteration cap still returns the last iterate.
func Intersect(g1, g2 newton.Evaluator, x0 float64, opts *newton.Options) (float64, error) {
	if g1 == nil || g2 == nil {
		return x0, ErrNilCurve
	}
	res, err := newton.Solve(Difference(g1, g2), x0, opts)
	if err != nil {
		return res.X, fmt.Errorf("intersect from x0=%g: %w", x0, err)
	}

	return res.X, nil
}

// Sweep runs Intersect from n equally spaced guesses lower + i*(upper-lower)/n,
// i = 0..n-1, and reports one Attempt per guess in guess order.
//
// Errors (returned before any solve):
//   - ErrNilCurve - g1 or g2 is nil.
//   - ErrBadRange - n <= 0, upper <= lower, or non-finite bounds.
//   - newton.ErrBadOptions - opts fails Validate.
//
// Per-guess solver failures never abort the sweep; they are recorded in the
// Attempt's Status and Err.
//
// Complexity: O(n * MaxIter) curve evaluations.
func Sweep(g1, g2 newton.Evaluator, lower, upper float64, n int, opts *newton.Options) ([]Attempt, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrNilCurve
	}
	if err := validateRange(lower, upper, n); err != nil {
		return nil, err
	}
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}

	d := Difference(g1, g2)
	step := (upper - lower) / float64(n)
	out := make([]Attempt, n)
	for i := 0; i < n; i++ {
		guess := lower + float64(i)*step
		res, err := newton.Solve(d, guess, opts)
		out[i] = Attempt{
			Guess:      guess,
			Root:       res.X,
			Iterations: res.Iterations,
			Status:     classify(err),
			Err:        err,
		}
	}

	return out, nil
}

// FindIntersections sweeps [lower, upper) with n guesses and returns Roots of
// the attempts. Guesses that hit a zero derivative are dropped, and so are
// guesses whose curves produced NaN or ±Inf; the surviving roots are rounded,
// deduplicated and sorted.
func FindIntersections(g1, g2 newton.Evaluator, lower, upper float64, n int, opts *newton.Options) ([]float64, error) {
	attempts, err := Sweep(g1, g2, lower, upper, n, opts)
	if err != nil {
		return nil, err
	}

	return Roots(attempts), nil
}

// Roots rounds the root of every Found attempt to RoundDigits decimal digits
// and returns the distinct values in ascending order. The result is never nil;
// it is empty when no attempt was Found.
func Roots(attempts []Attempt) []float64 {
	roots := make([]float64, 0, len(attempts))
	for _, a := range attempts {
		if a.Status != Found {
			continue
		}
		r := Round(a.Root, RoundDigits)
		if r == 0 {
			r = 0 // fold -0 into +0
		}
		roots = append(roots, r)
	}
	slices.Sort(roots)

	return slices.Compact(roots)
}

// Round rounds x to the given number of decimal digits, half away from zero.
// Values too large to carry that many fractional digits are returned unchanged.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(digits))
	scaled := x * p
	if math.Abs(scaled) >= 1<<52 {
		return x
	}

	return math.Round(scaled) / p
}

func validateRange(lower, upper float64, n int) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrBadRange)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("[%g, %g): %w", lower, upper, ErrBadRange)
	}
	if upper <= lower {
		return fmt.Errorf("[%g, %g): %w", lower, upper, ErrBadRange)
	}

	return nil
}

func classify(err error) Status {
	switch {
	case err == nil:
		return Found
	case errors.Is(err, newton.ErrZeroDerivative):
		return ZeroDerivative
	case errors.Is(err, newton.ErrNonFinite):
		return NonFinite
	default:
		return Failed
	}
}
