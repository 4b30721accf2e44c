package newton_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/newton"
)

// ExampleSolve finds √4 starting from 1.
func ExampleSolve() {
	f := func(x float64) (float64, float64) { return x*x - 4, 2 * x }

	res, err := newton.Solve(f, 1, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = %.12f\n", res.X)
	// Output:
	// x = 2.000000000000
}
