// SPDX-License-Identifier: MIT

package secret

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/polysecret/basedecode"
	"github.com/katalvlaran/polysecret/interp"
)

// Split is the inverse of Reconstruct: it evaluates the integer polynomial
// coeffs (coeffs[0] is the secret) at every x in xs and encodes each value
// in base. The returned Input has K = len(coeffs) and N = len(xs).
//
// Evaluation is exact; a share value that is negative or larger than
// basedecode.MaxExactFloat fails with basedecode.ErrOverflow, since
// Reconstruct could not decode it back exactly.
//
// Errors:
//   - interp.ErrInvalidSize (no coefficients).
//   - ErrInvalidKey (x < 1 or repeated x).
//   - interp.ErrInsufficientPoints (len(xs) < len(coeffs)).
//   - basedecode.ErrInvalidBase, basedecode.ErrOverflow.
func Split(coeffs []int64, xs []int, base int) (Input, error) {
	if len(coeffs) == 0 {
		return Input{}, fmt.Errorf("%w: no coefficients", interp.ErrInvalidSize)
	}
	if err := basedecode.ValidateBase(base); err != nil {
		return Input{}, err
	}
	if len(xs) < len(coeffs) {
		return Input{}, fmt.Errorf("%w: need %d, got %d", interp.ErrInsufficientPoints, len(coeffs), len(xs))
	}

	limit := big.NewInt(basedecode.MaxExactFloat)
	seen := make(map[int]struct{}, len(xs))
	shares := make([]Share, 0, len(xs))
	for _, x := range xs {
		key := strconv.Itoa(x)
		if x < 1 {
			return Input{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		if _, dup := seen[x]; dup {
			return Input{}, fmt.Errorf("%w: %q repeated", ErrInvalidKey, key)
		}
		seen[x] = struct{}{}

		y := evalExact(coeffs, x)
		if y.Sign() < 0 || y.Cmp(limit) > 0 {
			return Input{}, shareErrorf(key, fmt.Errorf("%w: p(%d) = %s", basedecode.ErrOverflow, x, y))
		}
		value, err := basedecode.Encode(base, y.Int64())
		if err != nil {
			return Input{}, shareErrorf(key, err)
		}
		shares = append(shares, Share{Key: key, Base: strconv.Itoa(base), Value: value})
	}

	return Input{
		Meta:   &Metadata{N: len(xs), K: len(coeffs)},
		Shares: shares,
	}, nil
}

// evalExact evaluates coeffs at x with Horner's rule over big.Int.
func evalExact(coeffs []int64, x int) *big.Int {
	acc := new(big.Int)
	bx := big.NewInt(int64(x))
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, bx)
		acc.Add(acc, big.NewInt(coeffs[i]))
	}

	return acc
}
