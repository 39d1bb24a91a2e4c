// SPDX-License-Identifier: MIT

package secret

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/polysecret/basedecode"
	"github.com/katalvlaran/polysecret/interp"
)

// Reconstruct recovers the constant term of the polynomial hidden in in.
//
// Implementation:
//   - Stage 1: read k from in.Meta (ErrMissingMetadata when absent or < 1).
//   - Stage 2: decode every share into a Point, in slice order; a bad key,
//     base or value fails with the share key attached.
//   - Stage 3: interp.BuildSystem(points, k) over the first k points, then
//     solve for the coefficient vector.
//   - Stage 4: apply the rounding policy to coefficient 0 and, under
//     WithVerify, check the remaining points against the polynomial.
//
// Behavior highlights:
//   - Pure: no shared state, so concurrent calls on distinct inputs are safe
//     and repeated calls on the same input return identical results.
//   - k ≤ N is not checked; fewer than k distinct points surface as
//     interp.ErrInsufficientPoints.
//
// Errors:
//   - ErrMissingMetadata, ErrInvalidKey, ErrInconsistentShare.
//   - basedecode.ErrInvalidBase, ErrInvalidDigit, ErrOverflow (per share).
//   - interp.ErrInsufficientPoints, matrix.ErrSingular, matrix.ErrNaNInf.
func Reconstruct(in Input, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	log := o.logger

	if in.Meta == nil || in.Meta.K < 1 {
		return nil, fmt.Errorf("%w: required share count k not set", ErrMissingMetadata)
	}
	k := in.Meta.K

	points, err := decodeShares(in.Shares)
	if err != nil {
		return nil, err
	}
	log.Debug("shares decoded", zap.Int("k", k), zap.Int("n", in.Meta.N), zap.Int("decoded", len(points)))

	sys, err := interp.BuildSystem(points, k)
	if err != nil {
		return nil, err
	}
	coeffs, err := interp.Solve(sys)
	if err != nil {
		return nil, err
	}
	residuals, err := interp.Residuals(sys, coeffs)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Raw:          coeffs[0],
		Secret:       coeffs[0],
		Coefficients: coeffs,
		Used:         append([]interp.Point(nil), points[:k]...),
		Unused:       append([]interp.Point(nil), points[k:]...),
		Residuals:    residuals,
	}
	res.Fingerprint = Fingerprint(res.Used)
	if o.round {
		res.Secret, res.Rounded = roundNear(res.Raw, o.roundEps)
	}

	if o.verify {
		if err = verifyUnused(in.Shares[k:], res.Unused, coeffs, o.verifyEps); err != nil {
			return nil, err
		}
		log.Debug("unused shares verified", zap.Int("count", len(res.Unused)))
	}

	log.Debug("secret recovered",
		zap.Float64("secret", res.Secret),
		zap.Float64("raw", res.Raw),
		zap.Bool("rounded", res.Rounded),
		zap.String("fingerprint", res.Fingerprint),
	)

	return res, nil
}

// Secret is Reconstruct returning only the constant term.
func Secret(in Input, opts ...Option) (float64, error) {
	res, err := Reconstruct(in, opts...)
	if err != nil {
		return 0, err
	}

	return res.Secret, nil
}

// ParseKey converts a share key to its x-coordinate (an integer ≥ 1).
func ParseKey(key string) (int, error) {
	x, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil || x < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return x, nil
}

// decodeShares turns every share into a Point, preserving order.
func decodeShares(shares []Share) ([]interp.Point, error) {
	points := make([]interp.Point, 0, len(shares))
	for _, s := range shares {
		x, err := ParseKey(s.Key)
		if err != nil {
			return nil, err
		}
		base, err := basedecode.ParseBase(s.Base)
		if err != nil {
			return nil, shareErrorf(s.Key, err)
		}
		y, err := basedecode.DecodeFloat(base, s.Value)
		if err != nil {
			return nil, shareErrorf(s.Key, err)
		}
		points = append(points, interp.Point{X: x, Y: y})
	}

	return points, nil
}

// Rounding tolerance bounds. The tolerance grows with the spacing of
// float64 values around v (solver noise) but never reaches a real fraction.
const (
	roundNoiseULPs    = 16
	maxRoundTolerance = 0.25
)

// roundNear snaps v to the nearest integer r when |v − r| ≤ tol, where
// tol = min(max(eps, 16·ulp(v)), 0.25). Negative zero is normalized to +0.
func roundNear(v, eps float64) (float64, bool) {
	r := math.Round(v)
	if math.Abs(v-r) > roundTolerance(v, eps) {
		return v, false
	}
	if r == 0 {
		r = 0
	}

	return r, r != v
}

func roundTolerance(v, eps float64) float64 {
	a := math.Abs(v)
	ulp := math.Nextafter(a, math.Inf(1)) - a

	return math.Min(math.Max(eps, roundNoiseULPs*ulp), maxRoundTolerance)
}

// verifyUnused checks p(x) against y for every point beyond the first k.
func verifyUnused(shares []Share, points []interp.Point, coeffs []float64, eps float64) error {
	for i, p := range points {
		got := interp.Evaluate(coeffs, float64(p.X))
		if math.Abs(got-p.Y) > eps*math.Max(1, math.Abs(p.Y)) {
			return shareErrorf(shares[i].Key, fmt.Errorf("%w: p(%d) = %g, share holds %g",
				ErrInconsistentShare, p.X, got, p.Y))
		}
	}

	return nil
}
