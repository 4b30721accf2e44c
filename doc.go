// Package lvnum collects small numerical routines for curve work: Newton
// root finding, curve intersection sweeps, polynomial interpolation and
// quick raster plots of the results.
//
// Layout:
//
//	newton/    - Solve, a Newton–Raphson iteration over an (f, f') evaluator
//	intersect/ - Intersect, Sweep and FindIntersections of two curves
//	interp/    - quadratic, cubic and general polynomial interpolation
//	matrix/    - Dense, Vandermonde, LU with partial pivoting, Solve
//	plot/      - PNG/JPEG figures of data points, curves and crossings
//	cmd/lvnum  - command line front end (check, interp, intersect)
//
// Quick example:
//
//	f := func(x float64) (float64, float64) { return x*x - 2, 2 * x }
//	res, err := newton.Solve(f, 1, nil) // res.X ≈ 1.4142135623730951
//
//	go get github.com/katalvlaran/lvnum
package lvnum
