// SPDX-License-Identifier: MIT

package secret

import (
	"errors"
	"fmt"
)

// Sentinels owned by the reconstructor. Errors from the layers below
// (basedecode, interp, matrix) pass through unchanged in kind, so callers
// match e.g. basedecode.ErrInvalidDigit or matrix.ErrSingular directly.
var (
	// ErrMissingMetadata indicates an input without a usable required count k.
	ErrMissingMetadata = errors.New("secret: missing metadata")

	// ErrInvalidKey indicates a share key that is not an integer ≥ 1.
	ErrInvalidKey = errors.New("secret: invalid share key")

	// ErrInconsistentShare indicates an unused share that does not lie on the
	// recovered polynomial (only reported under WithVerify).
	ErrInconsistentShare = errors.New("secret: share inconsistent with recovered polynomial")
)

// shareErrorf annotates err with the share key it came from.
func shareErrorf(key string, err error) error {
	return fmt.Errorf("share %q: %w", key, err)
}
