package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// ExampleSolve solves the quadratic interpolation system through (-1,1), (0,-1), (2,7).
func ExampleSolve() {
	v, _ := matrix.Vandermonde([]float64{-1, 0, 2}, 3)
	c, err := matrix.Solve(v, []float64{1, -1, 7})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f %.6f %.6f\n", c[0], c[1], c[2])
	// Output:
	// -1.000000 0.000000 2.000000
}
