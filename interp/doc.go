// SPDX-License-Identifier: MIT

// Package interp poses polynomial interpolation as a Vandermonde linear
// system and solves it for the coefficient vector.
//
// Given k points (x_i, y_i) with distinct x, the unique polynomial of degree
// k-1 through them has coefficients c solving
//
//	| 1  x_0  x_0^2 ... x_0^(k-1) |   | c_0     |   | y_0     |
//	| 1  x_1  x_1^2 ... x_1^(k-1) | · | c_1     | = | y_1     |
//	| ...                         |   | ...     |   | ...     |
//	| 1  x_k-1 ...    x_k-1^(k-1) |   | c_(k-1) |   | y_(k-1) |
//
// c_0 is the constant term. The direct coefficient form (rather than
// Lagrange) exposes every coefficient, which Evaluate and Residuals use to
// cross-check points that did not take part in the solve.
//
// Solving goes through matrix.SolvePivoted and inherits its floating-point
// limits: large x or high degree make the Vandermonde matrix ill-conditioned.
package interp
