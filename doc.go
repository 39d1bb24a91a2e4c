// SPDX-License-Identifier: MIT

// Package polysecret recovers a secret hidden as the constant term of an
// integer polynomial, given enough points on it, each point's y-value written
// in its own base (2..36).
//
// 🚀 What is polysecret?
//
//	A small, dependency-light toolkit that brings together:
//		• Base decoding: overflow-checked digits-to-integer conversion
//		• Vandermonde systems: one row per share, x^0..x^(k-1)
//		• Linear solving: Gaussian elimination with partial pivoting
//		• Reconstruction: first k shares → coefficients → constant term
//		• Share files: JSON/YAML documents, batch solving, share generation
//
// ✨ Why polysecret?
//
//   - Exact where it can be: inputs above 2^53 are rejected, not rounded
//   - Honest about floats: Result keeps both the raw and the rounded secret
//   - Checkable: optional verification of the shares beyond the first k
//
// Packages:
//
//	basedecode/ : digit strings in bases 2..36 → int64 / float64
//	matrix/     : Dense matrix, pivoted Gaussian solver, MatVec
//	interp/     : Point, Vandermonde system builder, Horner evaluation
//	secret/     : Reconstruct, ReconstructAll, Split, Fingerprint
//	sharefile/  : share documents (JSON, YAML) ⇄ secret.Input
//	config/     : YAML settings for the command
//	plot/       : HTML chart of shares and the recovered curve
//	cmd/polysecret : solve / split / prompt command
//
// Quick example, shares of x² + 3:
//
//	x=1 base 10 "4", x=2 base 2 "111", x=3 base 10 "12", x=6 base 4 "213"
//	k=3 → coefficients [3 0 1] → secret 3
//
//	go install github.com/katalvlaran/polysecret/cmd/polysecret@latest
package polysecret
