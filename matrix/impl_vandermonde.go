// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opVandermonde = "Vandermonde"

// Vandermonde returns the len(x)×cols matrix V with V[i][j] = x[i]^j.
//
// Row i evaluates the monomials 1, x[i], x[i]^2, ... so that V*c is the
// polynomial with coefficients c (lowest degree first) sampled at x.
//
// Errors:
//   - ErrInvalidDimensions (empty x or cols <= 0),
//     ErrNaNInf (non-finite node, or a power overflowing float64).
//
// Complexity:
//   - Time O(len(x)*cols), Space O(len(x)*cols).
func Vandermonde(x []float64, cols int) (*Dense, error) {
	if len(x) == 0 || cols <= 0 {
		return nil, matrixErrorf(opVandermonde, ErrInvalidDimensions)
	}
	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opVandermonde, err)
	}

	v, err := NewDense(len(x), cols)
	if err != nil {
		return nil, matrixErrorf(opVandermonde, err)
	}
	var (
		i, j int
		p    float64
	)
	for i = 0; i < len(x); i++ {
		p = 1
		for j = 0; j < cols; j++ {
			if math.IsInf(p, 0) {
				return nil, matrixErrorf(opVandermonde, fmt.Errorf("x[%d]^%d: %w", i, j, ErrNaNInf))
			}
			v.data[i*cols+j] = p
			p *= x[i]
		}
	}

	return v, nil
}
