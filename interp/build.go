// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/polysecret/matrix"
)

// BuildSystem assembles the Vandermonde system for the first k points.
//
// Implementation:
//   - Stage 1: validate k ≥ 1, every x ≥ 1, and that points holds at least k
//     distinct x values.
//   - Stage 2: for i < k write row i as successive powers x_i^0..x_i^(k-1)
//     (running product, no math.Pow) and B[i] = y_i.
//
// Behavior highlights:
//   - Exactly points[:k] is used, in the given order. Extra points are ignored.
//   - A duplicate x inside points[:k] is not rejected here; it yields two
//     identical rows and SolvePivoted reports matrix.ErrSingular.
//   - Returns freshly allocated structures; points is not retained.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidPoint, ErrInsufficientPoints.
//   - matrix.ErrNaNInf when a power overflows float64.
//
// Complexity:
//   - Time O(n + k^2), Space O(k^2).
func BuildSystem(points []Point, k int) (*LinearSystem, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, k)
	}
	distinct := make(map[int]struct{}, len(points))
	for _, p := range points {
		if p.X < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidPoint, p.X)
		}
		distinct[p.X] = struct{}{}
	}
	if len(distinct) < k {
		return nil, fmt.Errorf("%w: need %d distinct x, got %d", ErrInsufficientPoints, k, len(distinct))
	}

	a, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	b := make([]float64, k)

	var (
		i, j  int
		x, pw float64
	)
	for i = 0; i < k; i++ {
		x = float64(points[i].X)
		pw = 1
		for j = 0; j < k; j++ {
			if err = a.Set(i, j, pw); err != nil {
				return nil, fmt.Errorf("x=%d power %d: %w", points[i].X, j, err)
			}
			pw *= x
		}
		b[i] = points[i].Y
	}

	return &LinearSystem{A: a, B: b}, nil
}

// Solve returns the coefficient vector of sys (index i = coefficient of x^i).
// sys is left untouched.
func Solve(sys *LinearSystem) ([]float64, error) {
	if sys == nil {
		return nil, matrix.ErrNilMatrix
	}

	return matrix.SolvePivoted(sys.A, sys.B)
}

// Interpolate builds the system for the first k points and solves it.
func Interpolate(points []Point, k int) ([]float64, error) {
	sys, err := BuildSystem(points, k)
	if err != nil {
		return nil, err
	}

	return Solve(sys)
}
