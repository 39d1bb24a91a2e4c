// SPDX-License-Identifier: MIT

// Package interp: domain types for polynomial interpolation.
package interp

import "github.com/katalvlaran/polysecret/matrix"

// Point is one decoded sample (x, y) of the hidden polynomial.
// X is a positive integer; within one reconstruction all X are distinct.
type Point struct {
	X int     // x-coordinate (share key), ≥ 1
	Y float64 // decoded y-coordinate
}

// LinearSystem is the Vandermonde system A·c = B of order k.
// Row i of A is [x_i^0, x_i^1, ..., x_i^(k-1)] and B[i] = y_i.
// Solving does not mutate it, so one system may be solved repeatedly.
type LinearSystem struct {
	A *matrix.Dense // k×k Vandermonde matrix
	B []float64     // right-hand side, len k
}

// Size returns the order k of the system.
func (s *LinearSystem) Size() int { return len(s.B) }
