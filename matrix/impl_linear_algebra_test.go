package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const laTol = 1e-12

// TestLU_ReconstructsPA verifies P*A == L*U on a matrix that needs a row swap.
func TestLU_ReconstructsPA(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{4, 0, 3},
	})
	require.NoError(t, err)

	f, err := matrix.LU(a)
	require.NoError(t, err)

	L, U, perm := f.L(), f.U(), f.Perm()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var lu float64
			for k := 0; k < 3; k++ {
				l, _ := L.At(i, k)
				u, _ := U.At(k, j)
				lu += l * u
			}
			pa, _ := a.At(perm[i], j)
			assert.InDelta(t, pa, lu, laTol, "(P*A)[%d][%d]", i, j)
		}
	}
	assert.Equal(t, 2, perm[0], "largest |a[i][0]| must be pivoted first")
	assert.InDelta(t, -2.0, f.Det(), laTol)
}

// TestLU_Det checks the signed determinant.
func TestLU_Det(t *testing.T) {
	a, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	f, err := matrix.LU(a)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, f.Det(), laTol)
}

// TestLU_Errors covers nil, non-square and singular inputs.
func TestLU_Errors(t *testing.T) {
	_, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.LU(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.LU(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sing, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err = matrix.LU(sing)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolve_Small solves a 2×2 system and checks the residual via MatVec.
func TestSolve_Small(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}})
	b := []float64{3, 5}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], laTol)
	assert.InDelta(t, 1.4, x[1], laTol)

	r, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, b, r, laTol)
}

// TestSolve_ZeroLeadingPivot needs pivoting: a plain Doolittle pass would divide by zero.
func TestSolve_ZeroLeadingPivot(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})

	x, err := matrix.Solve(a, []float64{7, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 7}, x)
}

// TestSolve_BadRHS covers right-hand-side validation.
func TestSolve_BadRHS(t *testing.T) {
	a, _ := matrix.NewFromRows([][]float64{{1, 0}, {0, 1}})

	_, err := matrix.Solve(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Solve(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(a, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestMatVec_Errors covers operand validation.
func TestMatVec_Errors(t *testing.T) {
	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	a, _ := matrix.NewDense(2, 2)
	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVandermonde checks layout (lowest power first) and guards.
func TestVandermonde(t *testing.T) {
	v, err := matrix.Vandermonde([]float64{-1, 0, 2}, 3)
	require.NoError(t, err)
	require.Equal(t, "[1, -1, 1]\n[1, 0, 0]\n[1, 2, 4]\n", v.String())

	_, err = matrix.Vandermonde(nil, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Vandermonde([]float64{1}, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Vandermonde([]float64{math.NaN()}, 2)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Vandermonde([]float64{1e200}, 4)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestVandermonde_RepeatedNodeSingular: two equal nodes make the system singular.
func TestVandermonde_RepeatedNodeSingular(t *testing.T) {
	v, err := matrix.Vandermonde([]float64{1, 1, 2}, 3)
	require.NoError(t, err)

	_, err = matrix.Solve(v, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSingular)
}
