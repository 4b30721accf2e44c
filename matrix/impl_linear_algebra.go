// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by interpolation:
// matrix-vector product, LU factorization with partial pivoting and
// square-system solves. All functions perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Loop orders are fixed so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU     = "LU"
	opSolve  = "Solve"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LUDecomp holds a factorization P*A = L*U computed by LU.
// L (unit lower) and U (upper) share one compact n×n buffer; perm[i] is the
// row of A that ended up in row i.
type LUDecomp struct {
	n     int
	lu    *Dense
	perm  []int
	swaps int
}

// LU computes the Doolittle factorization P*A = L*U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into a compact working buffer.
//   - Stage 2: For k=0..n-1 pick the row with the largest |a[i][k]| (i ≥ k, first
//     wins on ties), swap it up, then eliminate below the pivot storing the
//     multipliers in place of the zeroed entries.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (column without a non-zero pivot).
//
// Determinism:
//   - Fixed k→i→j order and a deterministic tie-break on pivot choice.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUDecomp, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	work, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a := work.data

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, v    float64
		pivot, l   float64
		swaps      int
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}

		// Eliminate below the pivot; multipliers overwrite the eliminated entries.
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			l = a[i*n+k] / pivot
			a[i*n+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return &LUDecomp{n: n, lu: work, perm: perm, swaps: swaps}, nil
}

// L returns the unit lower-triangular factor as a fresh Dense.
func (f *LUDecomp) L() *Dense {
	out, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		out.data[i*f.n+i] = 1
		for j := 0; j < i; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return out
}

// U returns the upper-triangular factor as a fresh Dense.
func (f *LUDecomp) U() *Dense {
	out, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return out
}

// Perm returns a copy of the row permutation: row i of P*A is row Perm()[i] of A.
func (f *LUDecomp) Perm() []int {
	return append([]int(nil), f.perm...)
}

// Det returns det(A) as the signed product of U's diagonal.
func (f *LUDecomp) Det() float64 {
	det := 1.0
	if f.swaps%2 == 1 {
		det = -1.0
	}
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}

	return det
}

// Solve returns x with A*x = b for the factorized A.
//
// Implementation:
//   - Stage 1: validate len(b) == n and finite entries.
//   - Stage 2: forward substitution L*y = P*b.
//   - Stage 3: backward substitution U*x = y.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUDecomp) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n, a := f.n, f.lu.data
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L*y = P*b (unit diagonal, y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum / a[i*n+i]
	}

	return x, nil
}

// Solve factorizes a and solves a*x = b in one call.
// Prefer LU(a) followed by repeated Solve calls when several right-hand sides share a.
func Solve(a Matrix, b []float64) ([]float64, error) {
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// toDense copies any Matrix into a fresh *Dense (fast copy for *Dense inputs).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
