// SPDX-License-Identifier: MIT

package interp_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/polysecret/interp"
	"github.com/katalvlaran/polysecret/matrix"
	"github.com/stretchr/testify/require"
)

// workedPoints are the decoded shares of the reference example; all four lie
// on x^2 + 3.
var workedPoints = []interp.Point{
	{X: 1, Y: 4},
	{X: 2, Y: 7},
	{X: 3, Y: 12},
	{X: 6, Y: 39},
}

// TestBuildSystem_Layout pins the row/column convention.
func TestBuildSystem_Layout(t *testing.T) {
	sys, err := interp.BuildSystem(workedPoints, 3)
	require.NoError(t, err)
	require.Equal(t, 3, sys.Size())
	require.Equal(t, "[1, 1, 1]\n[1, 2, 4]\n[1, 3, 9]\n", sys.A.String()) // row i = x_i^0..x_i^2
	require.Equal(t, []float64{4, 7, 12}, sys.B)                          // (6,39) not used
}

// TestBuildSystem_Errors covers the size and point checks.
func TestBuildSystem_Errors(t *testing.T) {
	_, err := interp.BuildSystem(workedPoints, 0)
	require.ErrorIs(t, err, interp.ErrInvalidSize)

	_, err = interp.BuildSystem(workedPoints[:2], 3)
	require.ErrorIs(t, err, interp.ErrInsufficientPoints)

	dup := []interp.Point{{X: 1, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 7}}
	_, err = interp.BuildSystem(dup, 3)
	require.ErrorIs(t, err, interp.ErrInsufficientPoints) // only two distinct x

	_, err = interp.BuildSystem([]interp.Point{{X: 0, Y: 1}}, 1)
	require.ErrorIs(t, err, interp.ErrInvalidPoint)
}

// TestBuildSystem_PowerOverflow rejects Vandermonde entries beyond float64.
func TestBuildSystem_PowerOverflow(t *testing.T) {
	const k = 200 // 200^199 overflows float64
	pts := make([]interp.Point, k)
	for i := range pts {
		pts[i] = interp.Point{X: i + 1, Y: 1}
	}
	_, err := interp.BuildSystem(pts, k)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestSolve_DuplicateInFirstK shows a repeated x among the used points is
// reported by the solver, even with enough distinct points overall.
func TestSolve_DuplicateInFirstK(t *testing.T) {
	pts := []interp.Point{{X: 2, Y: 7}, {X: 2, Y: 7}, {X: 1, Y: 4}, {X: 3, Y: 12}}
	_, err := interp.Interpolate(pts, 3)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInterpolate_Worked recovers x^2 + 3 from the first three points.
func TestInterpolate_Worked(t *testing.T) {
	coeffs, err := interp.Interpolate(workedPoints, 3)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{3, 0, 1}, coeffs, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("coefficients mismatch (-want +got):\n%s", diff)
	}
	require.InDelta(t, 39.0, interp.Evaluate(coeffs, 6), 1e-9) // unused point agrees
}

// TestInterpolate_SinglePoint is the degree-0 case: [[1]]·c = [y].
func TestInterpolate_SinglePoint(t *testing.T) {
	coeffs, err := interp.Interpolate([]interp.Point{{X: 5, Y: 42}}, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{42}, coeffs)
}

// TestInterpolate_RoundTrip generates random integer polynomials, samples
// them at distinct x and checks the solve recovers every coefficient.
func TestInterpolate_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 200; trial++ {
		k := 1 + rng.Intn(5)
		want := make([]float64, k)
		for i := range want {
			want[i] = float64(rng.Intn(41) - 20)
		}
		xs := rng.Perm(8)[:k]
		pts := make([]interp.Point, k)
		for i, x := range xs {
			pts[i] = interp.Point{X: x + 1, Y: interp.Evaluate(want, float64(x+1))}
		}

		got, err := interp.Interpolate(pts, k)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got, cmpopts.EquateApprox(1e-6, 1e-6)); diff != "" {
			t.Fatalf("trial %d (k=%d, xs=%v) mismatch (-want +got):\n%s", trial, k, xs, diff)
		}
	}
}

// TestSolve_Reusable solves the same system twice and gets the same answer.
func TestSolve_Reusable(t *testing.T) {
	sys, err := interp.BuildSystem(workedPoints, 4)
	require.NoError(t, err)
	first, err := interp.Solve(sys)
	require.NoError(t, err)
	second, err := interp.Solve(sys)
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = interp.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResiduals is ~0 for the solved system and nonzero for a wrong guess.
func TestResiduals(t *testing.T) {
	sys, err := interp.BuildSystem(workedPoints, 3)
	require.NoError(t, err)

	res, err := interp.Residuals(sys, []float64{3, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, res)

	res, err = interp.Residuals(sys, []float64{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -3, -3}, res)

	_, err = interp.Residuals(sys, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEvaluate(t *testing.T) {
	require.Equal(t, 0.0, interp.Evaluate(nil, 3))
	require.Equal(t, 7.0, interp.Evaluate([]float64{7}, 100))
	require.Equal(t, 39.0, interp.Evaluate([]float64{3, 0, 1}, 6))
	require.Equal(t, 15.0, interp.Evaluate([]float64{3, -1, 2}, 3)) // 2x^2 - x + 3
}
