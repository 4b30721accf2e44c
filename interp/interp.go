package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

const (
	quadPoints  = 3
	cubicPoints = 4
)

// QuadInterp returns c with p(x) = c[0] + c[1]x + c[2]x² through the three
// points (xi[i], yi[i]).
func QuadInterp(xi, yi []float64) ([]float64, error) {
	if err := validateCount(xi, yi, quadPoints); err != nil {
		return nil, fmt.Errorf("QuadInterp: %w", err)
	}

	return solve(xi, yi)
}

// CubicInterp returns c with p(x) = c[0] + c[1]x + c[2]x² + c[3]x³ through the
// four points (xi[i], yi[i]).
func CubicInterp(xi, yi []float64) ([]float64, error) {
	if err := validateCount(xi, yi, cubicPoints); err != nil {
		return nil, fmt.Errorf("CubicInterp: %w", err)
	}

	return solve(xi, yi)
}

// PolyInterp returns the n coefficients of the degree n-1 polynomial through
// n points with distinct nodes.
//
// Errors:
//   - ErrEmptyInput, ErrLengthMismatch, ErrNonFinite - input validation.
//   - ErrRepeatedNode (joined with matrix.ErrSingular) - equal nodes.
//
// Complexity: O(n³) for the LU solve, O(n²) memory.
func PolyInterp(xi, yi []float64) ([]float64, error) {
	if err := validate(xi, yi); err != nil {
		return nil, fmt.Errorf("PolyInterp: %w", err)
	}

	return solve(xi, yi)
}

// solve assembles V and solves V*c = yi. Inputs are already validated.
func solve(xi, yi []float64) ([]float64, error) {
	v, err := matrix.Vandermonde(xi, len(xi))
	if err != nil {
		return nil, err
	}
	c, err := matrix.Solve(v, yi)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, fmt.Errorf("%w: %w", ErrRepeatedNode, err)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func validateCount(xi, yi []float64, want int) error {
	if err := validate(xi, yi); err != nil {
		return err
	}
	if len(xi) != want {
		return fmt.Errorf("got %d, want %d: %w", len(xi), want, ErrPointCount)
	}

	return nil
}

func validate(xi, yi []float64) error {
	if len(xi) == 0 && len(yi) == 0 {
		return ErrEmptyInput
	}
	if len(xi) != len(yi) {
		return fmt.Errorf("len(xi)=%d, len(yi)=%d: %w", len(xi), len(yi), ErrLengthMismatch)
	}
	for i := range xi {
		if !finite(xi[i]) || !finite(yi[i]) {
			return fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
