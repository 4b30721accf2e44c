// Package interp computes interpolating polynomials by solving the
// Vandermonde system V*c = y, where V[i][j] = xi[i]^j.
//
// QuadInterp and CubicInterp are the fixed-size forms (3 and 4 points);
// PolyInterp accepts any number of distinct nodes. Coefficients are returned
// lowest degree first:
//
//	p(x) = c[0] + c[1]*x + c[2]*x^2 + ...
//
// Polynomial wraps a coefficient slice with Horner evaluation and a
// ValueDeriv method whose signature matches newton.Evaluator, so an
// interpolant can be handed straight to the root finder.
//
// High-degree interpolation on equally spaced nodes is ill-conditioned;
// the solver pivots but cannot recover digits the system does not carry.
package interp
