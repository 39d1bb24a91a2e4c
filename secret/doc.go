// SPDX-License-Identifier: MIT

// Package secret recovers the hidden constant term of a polynomial from
// base-encoded shares.
//
// A share document names how many shares are required (k) and carries shares
// keyed by their x-coordinate, each holding a y value written in some base
// between 2 and 36. Reconstruct decodes every share, builds the Vandermonde
// system over the first k points, solves it with partial pivoting and returns
// coefficient 0:
//
//	in := secret.Input{
//		Meta: &secret.Metadata{N: 4, K: 3},
//		Shares: []secret.Share{
//			{Key: "1", Base: "10", Value: "4"},
//			{Key: "2", Base: "2", Value: "111"},
//			{Key: "3", Base: "10", Value: "12"},
//			{Key: "6", Base: "4", Value: "213"},
//		},
//	}
//	res, err := secret.Reconstruct(in) // res.Secret == 3 (x^2 + 3)
//
// Policies (see options.go):
//   - Rounding: the constant term snaps to the nearest integer when it is
//     within DefaultRoundingEpsilon of one (absolute, widened to a few ulps
//     for large values, never past 0.25); Result.Raw keeps the solver output.
//     WithoutRounding disables this.
//   - Verification: shares past the first k are ignored unless WithVerify is
//     given, in which case each must lie on the recovered polynomial.
//
// ReconstructAll runs many independent documents in parallel; Split produces
// share documents from an integer polynomial.
package secret
