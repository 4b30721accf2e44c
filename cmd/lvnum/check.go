package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/intersect"
	"github.com/katalvlaran/lvnum/newton"
)

// errCheck marks a self-check whose result is off.
var errCheck = errors.New("unexpected result")

// check is one named self-check.
type check struct {
	name string
	run  func(opts *newton.Options) error
}

// fvalsSqrt is f(x) = x²-4 with f'(x) = 2x.
func fvalsSqrt(x float64) (float64, float64) { return x*x - 4, 2 * x }

// line is g(x) = 2x.
func line(x float64) (float64, float64) { return 2 * x, 2 }

// parabola is g(x) = x².
func parabola(x float64) (float64, float64) { return x * x, 2 * x }

func selfChecks() []check {
	return []check{
		{"newton/sqrt", checkSqrt},
		{"intersect/from+5", checkIntersectAt(5, 2)},
		{"intersect/from-5", checkIntersectAt(-5, 0)},
		{"intersect/sweep", checkSweep},
		{"interp/quad1", checkInterp(interp.QuadInterp, []float64{-1, 0, 2}, []float64{1, -1, 7}, []float64{-1, 0, 2})},
		{"interp/quad2", checkInterp(interp.QuadInterp, []float64{-1, 0, 1}, []float64{1, 0, 1}, []float64{0, 0, 1})},
		{"interp/cubic1", checkInterp(interp.CubicInterp, []float64{-1, 0, 1, 2}, []float64{0, 1, 2, 9}, []float64{1, 0, 0, 1})},
		{"interp/poly1", checkInterp(interp.PolyInterp, []float64{-1, 0, 1, 2}, []float64{0, 1, 2, 9}, []float64{1, 0, 0, 1})},
	}
}

func checkSqrt(opts *newton.Options) error {
	for _, x0 := range []float64{1, 2, 100} {
		res, err := newton.Solve(fvalsSqrt, x0, opts)
		if err != nil {
			return err
		}
		if math.Abs(res.X-2) >= 1e-14 {
			return fmt.Errorf("x0=%g: x=%22.15e after %d iterations: %w", x0, res.X, res.Iterations, errCheck)
		}
	}
	return nil
}

func checkIntersectAt(x0, want float64) func(*newton.Options) error {
	return func(opts *newton.Options) error {
		x, err := intersect.Intersect(line, parabola, x0, opts)
		if err != nil {
			return err
		}
		if math.Abs(x-want) >= 1e-14 {
			return fmt.Errorf("x=%22.15e, want %g: %w", x, want, errCheck)
		}
		return nil
	}
}

func checkSweep(opts *newton.Options) error {
	roots, err := intersect.FindIntersections(line, parabola, -5, 5, 20, opts)
	if err != nil {
		return err
	}
	if len(roots) != 2 || roots[0] != 0 || roots[1] != 2 {
		return fmt.Errorf("roots=%v, want [0 2]: %w", roots, errCheck)
	}
	return nil
}

func checkInterp(fit func(xi, yi []float64) ([]float64, error), xi, yi, want []float64) func(*newton.Options) error {
	return func(*newton.Options) error {
		c, err := fit(xi, yi)
		if err != nil {
			return err
		}
		if !allClose(c, want) {
			return fmt.Errorf("c=%v, want %v: %w", c, want, errCheck)
		}
		return nil
	}
}

// allClose reports whether every pair satisfies |a-b| <= 1e-8 + 1e-5*|b|.
func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-8+1e-5*math.Abs(b[i]) {
			return false
		}
	}
	return true
}
