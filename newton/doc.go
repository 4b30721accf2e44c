// Package newton finds roots of scalar functions with Newton's method.
//
// 🚀 What is it?
//
//	Given an Evaluator returning f(x) and f'(x), Solve iterates
//	x ← x - f(x)/f'(x) from an initial guess until |f(x)| < Tol or the
//	iteration cap MaxIter is reached.
//
// ✨ Key features:
//   - explicit per-call Options (MaxIter, Tol, Debug) instead of hidden defaults
//   - zero derivative reported as ErrZeroDerivative, never swallowed
//   - no hard failure on exhausting MaxIter: the last iterate is returned and
//     callers check convergence themselves with Converged
//   - optional debug trace of every iterate through a zap logger
//
// ⚙️ Usage:
//
//	f := func(x float64) (float64, float64) { return x*x - 4, 2 * x }
//	res, err := newton.Solve(f, 1, nil) // res.X ≈ 2
//
// Performance:
//
//   - Time:   O(MaxIter) evaluator calls
//   - Memory: O(1)
package newton
