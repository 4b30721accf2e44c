package newton

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Evaluator maps x to the pair (f(x), f'(x)).
// It must be stateless and return finite values for every x reached.
type Evaluator func(x float64) (fx, fpx float64)

const (
	// DefaultMaxIter bounds the loop when no Options are supplied.
	DefaultMaxIter = 20

	// DefaultTol is the absolute threshold on |f(x)| for convergence.
	DefaultTol = 1e-14
)

// Options configures a single Solve call.
//
// Fields:
//   - MaxIter - maximum number of passes; 0 returns the initial guess untouched.
//   - Tol     - convergence threshold on |f(x)|, must be > 0.
//   - Debug   - trace the initial guess and every later iterate.
//   - Logger  - sink for the debug trace; nil falls back to zap.L().
//
// Example:
//
//	opts := newton.DefaultOptions()
//	opts.MaxIter = 50
//	opts.Debug = true
//	res, err := newton.Solve(f, x0, &opts)
type Options struct {
	MaxIter int
	Tol     float64
	Debug   bool
	Logger  *zap.Logger
}

// DefaultOptions returns MaxIter=20, Tol=1e-14, Debug=false.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Tol:     DefaultTol,
	}
}

// Validate checks the numeric fields.
// Returns ErrBadOptions for MaxIter < 0 or a non-positive / non-finite Tol.
func (o Options) Validate() error {
	if o.MaxIter < 0 {
		return fmt.Errorf("MaxIter=%d: %w", o.MaxIter, ErrBadOptions)
	}
	if math.IsNaN(o.Tol) || math.IsInf(o.Tol, 0) || o.Tol <= 0 {
		return fmt.Errorf("Tol=%g: %w", o.Tol, ErrBadOptions)
	}

	return nil
}

// logger resolves the debug sink.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return zap.L()
}

// Result is the outcome of one Solve call.
// Iterations counts the Newton updates applied to X; it equals MaxIter when
// the cap was exhausted, which does not by itself mean failure.
type Result struct {
	X          float64
	Iterations int
}
