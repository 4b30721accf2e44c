package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/newton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const closeTol = 1e-10

// TestQuadInterp covers the two three-point fixtures.
func TestQuadInterp(t *testing.T) {
	cases := []struct {
		name   string
		xi, yi []float64
		want   []float64
	}{
		{"shifted parabola", []float64{-1, 0, 2}, []float64{1, -1, 7}, []float64{-1, 0, 2}},
		{"unit parabola", []float64{-1, 0, 1}, []float64{1, 0, 1}, []float64{0, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := interp.QuadInterp(tc.xi, tc.yi)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, c, closeTol)
		})
	}
}

// TestCubicInterp: points on 1 + x³.
func TestCubicInterp(t *testing.T) {
	c, err := interp.CubicInterp([]float64{-1, 0, 1, 2}, []float64{0, 1, 2, 9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, c, closeTol)
}

// TestPolyInterp matches the cubic fixture and reproduces a degree-5 polynomial.
func TestPolyInterp(t *testing.T) {
	c, err := interp.PolyInterp([]float64{-1, 0, 1, 2}, []float64{0, 1, 2, 9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0, 0, 1}, c, closeTol)

	want := interp.Polynomial{3, -1, 0, 2, 0.5, -0.25}
	xi := interp.Linspace(-2, 3, 6)
	yi := interp.Eval(want, xi)

	got, err := interp.PolyInterp(xi, yi)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64(want), got, 1e-9)

	one, err := interp.PolyInterp([]float64{4}, []float64{-2})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2}, one)
}

// TestInterp_Validation covers every input guard.
func TestInterp_Validation(t *testing.T) {
	_, err := interp.PolyInterp(nil, nil)
	require.ErrorIs(t, err, interp.ErrEmptyInput)

	_, err = interp.PolyInterp([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, interp.ErrLengthMismatch)

	_, err = interp.QuadInterp([]float64{1, 2}, []float64{1, 2})
	require.ErrorIs(t, err, interp.ErrPointCount)

	_, err = interp.CubicInterp([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, interp.ErrPointCount)

	_, err = interp.PolyInterp([]float64{1, math.NaN()}, []float64{1, 2})
	require.ErrorIs(t, err, interp.ErrNonFinite)

	_, err = interp.QuadInterp([]float64{1, 1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, interp.ErrRepeatedNode)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestPolynomial covers Horner evaluation and differentiation.
func TestPolynomial(t *testing.T) {
	p := interp.Polynomial{1, -3, 0, 2} // 1 - 3x + 2x³

	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, 11.0, p.Eval(2))
	assert.Equal(t, interp.Polynomial{-3, 0, 6}, p.Deriv())

	v, d := p.ValueDeriv(2)
	assert.Equal(t, 11.0, v)
	assert.Equal(t, 21.0, d)

	assert.Equal(t, interp.Polynomial{0}, interp.Polynomial{5}.Deriv())
	assert.Equal(t, 0.0, interp.Polynomial(nil).Eval(3))
	assert.Equal(t, -1, interp.Polynomial(nil).Degree())
}

// TestPolynomial_AsEvaluator feeds an interpolant into the Newton solver.
func TestPolynomial_AsEvaluator(t *testing.T) {
	c, err := interp.QuadInterp([]float64{-1, 0, 1}, []float64{-3, -4, -3}) // x² - 4
	require.NoError(t, err)

	res, err := newton.Solve(interp.Polynomial(c).ValueDeriv, 3, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.X, 1e-12)
}

// TestLinspace checks endpoints and degenerate sizes.
func TestLinspace(t *testing.T) {
	xs := interp.Linspace(-1, 3, 5)
	assert.Equal(t, []float64{-1, 0, 1, 2, 3}, xs)

	assert.Nil(t, interp.Linspace(0, 1, 0))
	assert.Equal(t, []float64{7}, interp.Linspace(7, 9, 1))

	long := interp.Linspace(0.1, 0.7, 1001)
	assert.Equal(t, 0.7, long[len(long)-1])
}
