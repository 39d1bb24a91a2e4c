// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/polysecret/matrix"
)

// ExampleSolvePivoted solves the Vandermonde system of x^2 + 3 sampled at
// x = 1, 2, 3 and prints the coefficients (constant term first).
func ExampleSolvePivoted() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 1, 1},
		{1, 2, 4},
		{1, 3, 9},
	})
	x, err := matrix.SolvePivoted(a, []float64{4, 7, 12})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.3f %.3f %.3f\n", x[0], x[1], x[2])

	// Output:
	// 3.000 0.000 1.000
}
