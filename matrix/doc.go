// Package matrix provides the small dense linear-algebra core used by the
// interpolation routines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Vandermonde assembly for polynomial interpolation systems.
//   - LU factorization with partial pivoting and Solve for square systems.
//   - MatVec for residual checks.
//
// Every fallible call returns a package sentinel (ErrSingular,
// ErrDimensionMismatch, ...) that callers match with errors.Is.
//
//	a, _ := matrix.Vandermonde([]float64{-1, 0, 2}, 3)
//	c, err := matrix.Solve(a, []float64{1, -1, 7}) // c == [-1 0 2]
package matrix
