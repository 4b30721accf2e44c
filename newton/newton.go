package newton

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Solve - Newton's method for a scalar root.
//
// Algorithm Outline:
//  1. x = x0.
//  2. For k = 0..MaxIter-1:
//     (fx, fpx) = f(x)
//     if |fx| < Tol  → converged, Iterations = k
//     if fpx == 0    → ErrZeroDerivative
//     x = x - fx/fpx
//  3. Cap exhausted → return the last x with Iterations = MaxIter.
//
// A nil opts means DefaultOptions(). With MaxIter == 0 the evaluator is
// never called and (x0, 0) is returned.
//
// Errors:
//   - ErrNilEvaluator - f is nil.
//   - ErrBadOptions   - opts fails Validate.
//   - ErrNonFinite    - f returned NaN or ±Inf.
//   - ErrZeroDerivative - f'(x) == 0 before convergence. The Result then
//     carries the iterate at which the step failed.
//
// Exhausting MaxIter is not an error; use Converged when a hard guarantee is needed.
func Solve(f Evaluator, x0 float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if f == nil {
		return Result{X: x0}, ErrNilEvaluator
	}
	if err := o.Validate(); err != nil {
		return Result{X: x0}, err
	}

	var log *zap.Logger
	if o.Debug {
		log = o.logger()
		log.Debug("newton: initial guess", zap.Float64("x0", x0))
	}

	x := x0
	var fx, fpx float64
	for k := 0; k < o.MaxIter; k++ {
		if log != nil && k > 0 {
			log.Debug("newton: iterate", zap.Int("iteration", k), zap.Float64("x", x))
		}

		fx, fpx = f(x)
		if !finite(fx) || !finite(fpx) {
			return Result{X: x, Iterations: k}, fmt.Errorf("x=%g (pass %d): %w", x, k, ErrNonFinite)
		}
		if math.Abs(fx) < o.Tol {
			return Result{X: x, Iterations: k}, nil
		}
		if fpx == 0 {
			return Result{X: x, Iterations: k}, fmt.Errorf("x=%g (pass %d): %w", x, k, ErrZeroDerivative)
		}
		x -= fx / fpx
	}

	if log != nil {
		log.Debug("newton: iteration cap reached", zap.Int("max_iter", o.MaxIter), zap.Float64("x", x))
	}

	return Result{X: x, Iterations: o.MaxIter}, nil
}

// Converged reports whether |f(x)| < tol, the independent check callers run
// after Solve when they need a convergence guarantee.
// A nil f or a non-finite f(x) is never converged.
func Converged(f Evaluator, x, tol float64) bool {
	if f == nil {
		return false
	}
	fx, _ := f(x)

	return finite(fx) && math.Abs(fx) < tol
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
