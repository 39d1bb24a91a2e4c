// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind share
// reconstruction.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - SolvePivoted: Gaussian elimination with partial (max-magnitude) pivoting
//     and back substitution for square systems A·x = b.
//   - MatVec and AllClose: the small helpers used to check residuals of a
//     solved system.
//
// All kernels treat their inputs as read-only. SolvePivoted permutes and
// eliminates a private copy of A and b, so a caller may reuse its system after
// solving.
//
// Errors are package-level sentinels (see errors.go) wrapped with an
// operation tag, so callers match them with errors.Is:
//
//	x, err := matrix.SolvePivoted(a, b)
//	if errors.Is(err, matrix.ErrSingular) {
//		// duplicate or degenerate rows
//	}
package matrix
