// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrInvalidSize indicates a requested system order k < 1.
	ErrInvalidSize = errors.New("interp: system size must be >= 1")

	// ErrInsufficientPoints indicates fewer than k points with distinct x.
	ErrInsufficientPoints = errors.New("interp: not enough points")

	// ErrInvalidPoint indicates a point with x < 1.
	ErrInvalidPoint = errors.New("interp: x must be >= 1")
)
