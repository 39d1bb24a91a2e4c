// SPDX-License-Identifier: MIT

// Package secret: input and result types of a reconstruction.
package secret

import "github.com/katalvlaran/polysecret/interp"

// Metadata is the "keys" entry of a share document.
// K is required; N is advisory and never used for sizing.
type Metadata struct {
	N int `json:"n" yaml:"n"` // shares available
	K int `json:"k" yaml:"k"` // shares required (polynomial degree + 1)
}

// Share is one encoded sample: Key is the decimal x-coordinate, Value the
// y-coordinate written in Base.
type Share struct {
	Key   string
	Base  string
	Value string
}

// Input is an already-parsed share document. Shares are consumed in slice
// order; the first K of them determine the polynomial.
type Input struct {
	Meta   *Metadata
	Shares []Share
}

// Result is the outcome of one reconstruction.
type Result struct {
	// Secret is the constant term, rounded to an integer when it lies within
	// the rounding epsilon of one (see WithRoundingEpsilon).
	Secret float64

	// Raw is the unrounded constant term as produced by the solver.
	Raw float64

	// Rounded reports whether Secret differs in representation from Raw
	// because the rounding policy applied.
	Rounded bool

	// Coefficients holds c_0..c_(k-1); c_i multiplies x^i.
	Coefficients []float64

	// Used are the k points the system was built from, in order.
	Used []interp.Point

	// Unused are the decoded points beyond the first k.
	Unused []interp.Point

	// Residuals are A·c − b over the used points.
	Residuals []float64

	// Fingerprint is the hex SHA3-256 digest of Used (see Fingerprint).
	Fingerprint string
}
