// Package intersect locates the points where two curves meet by running
// Newton's method on their difference d(x) = g1(x) - g2(x).
//
// Intersect solves from a single starting guess. Sweep and FindIntersections
// are a brute-force multi-root heuristic: n equally spaced guesses over
// [lower, upper), each solved independently. Only roots whose basin of
// attraction contains a sample are found, and roots closer than the
// 14-digit rounding collapse into one value.
//
//	g1 := func(x float64) (float64, float64) { return 2 * x, 2 }
//	g2 := func(x float64) (float64, float64) { return x * x, 2 * x }
//	roots, _ := intersect.FindIntersections(g1, g2, -5, 5, 20, nil) // [0 2]
package intersect
