// SPDX-License-Identifier: MIT

package interp

import "github.com/katalvlaran/polysecret/matrix"

// Evaluate computes p(x) = Σ coeffs[i]·x^i with Horner's rule.
// An empty coefficient vector is the zero polynomial.
func Evaluate(coeffs []float64, x float64) float64 {
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// Residuals returns A·coeffs − B for sys, one entry per row.
// For an exact solution every residual is zero up to rounding.
func Residuals(sys *LinearSystem, coeffs []float64) ([]float64, error) {
	if sys == nil {
		return nil, matrix.ErrNilMatrix
	}
	ax, err := matrix.MatVec(sys.A, coeffs)
	if err != nil {
		return nil, err
	}
	for i := range ax {
		ax[i] -= sys.B[i]
	}

	return ax, nil
}
