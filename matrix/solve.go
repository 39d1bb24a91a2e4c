// SPDX-License-Identifier: MIT
// Package matrix: Gaussian elimination with partial pivoting.
//
// Purpose:
//   - Solve square systems A·x = b and return x in natural order
//     (x[0] is the coefficient of the first column).
//
// Notes:
//   - The only singularity test is an exact zero pivot. Tiny nonzero pivots are
//     accepted and may amplify rounding error; callers that need conditioning
//     guarantees must check residuals themselves (see MatVec).

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for accumulations (dot products, residuals).
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot during elimination.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opSolve    = "SolvePivoted"
	opMatVec   = "MatVec"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SolvePivoted solves the square system A·x = b by Gaussian elimination with
// partial pivoting followed by back substitution.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b). Copy A into private row slices and b into
//     a private vector; the caller's operands are never touched.
//   - Stage 2: Forward elimination. For each pivot column i, scan rows i..n-1
//     and take the row with the largest |a[r][i]| (first maximum wins on ties).
//     A maximum of exactly zero means no pivot exists → ErrSingular. Swap the
//     pivot row and its rhs entry into position i, then for every row r > i
//     subtract factor = a[r][i]/a[i][i] times the pivot row over columns i..n-1
//     and factor*b[i] from b[r].
//   - Stage 3: Back substitution for i = n-1..0: x[i] = b[i]/a[i][i], then
//     b[r] -= a[r][i]*x[i] for every r < i.
//
// Behavior highlights:
//   - Deterministic loop orders; identical inputs give bit-identical outputs.
//   - Row swaps exchange slice headers, not element data.
//
// Inputs:
//   - a: non-nil square Matrix (n×n).
//   - b: right-hand side, len(b) == n.
//
// Returns:
//   - []float64: solution vector x of length n.
//
// Errors:
//   - ErrNilMatrix         (a or b nil).
//   - ErrNonSquare         (a not square).
//   - ErrDimensionMismatch (len(b) != n).
//   - ErrSingular          (zero pivot column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the private copy.
func SolvePivoted(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := a.Rows()
	rows, err := copyRows(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	var (
		i, r, j  int
		pivotRow int
		maxAbs   float64
		v        float64
		factor   float64
	)

	// Forward elimination.
	for i = 0; i < n; i++ {
		pivotRow = i
		maxAbs = math.Abs(rows[i][i])
		for r = i + 1; r < n; r++ {
			if v = math.Abs(rows[r][i]); v > maxAbs {
				maxAbs = v
				pivotRow = r
			}
		}
		if maxAbs == ZeroPivot {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", i, ErrSingular))
		}
		if pivotRow != i {
			rows[i], rows[pivotRow] = rows[pivotRow], rows[i]
			rhs[i], rhs[pivotRow] = rhs[pivotRow], rhs[i]
		}

		for r = i + 1; r < n; r++ {
			factor = rows[r][i] / rows[i][i]
			if factor == 0 {
				continue
			}
			for j = i; j < n; j++ {
				rows[r][j] -= factor * rows[i][j]
			}
			rhs[r] -= factor * rhs[i]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		x[i] = rhs[i] / rows[i][i]
		for r = i - 1; r >= 0; r-- {
			rhs[r] -= rows[r][i] * x[i]
		}
	}

	return x, nil
}

// copyRows materializes m as independent row slices backed by one buffer.
// *Dense takes a single copy; other implementations go through At.
func copyRows(m Matrix) ([][]float64, error) {
	rowsN, colsN := m.Rows(), m.Cols()
	buf := make([]float64, rowsN*colsN)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < rowsN; i++ {
			for j = 0; j < colsN; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				buf[i*colsN+j] = v
			}
		}
	}

	out := make([][]float64, rowsN)
	for i := range out {
		out[i] = buf[i*colsN : (i+1)*colsN : (i+1)*colsN]
	}

	return out, nil
}
