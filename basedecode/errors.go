// SPDX-License-Identifier: MIT

package basedecode

import (
	"errors"
	"fmt"
)

// Sentinel errors; match with errors.Is. Returned errors carry the offending
// value in their message, e.g.
//
//	basedecode: invalid base "37"
//	basedecode: invalid digit 'z' at position 2 for base 16
var (
	// ErrInvalidBase indicates a base that is not an integer in [MinBase, MaxBase].
	ErrInvalidBase = errors.New("basedecode: invalid base")

	// ErrInvalidDigit indicates an empty digit string or a character that is
	// not a digit of the stated base.
	ErrInvalidDigit = errors.New("basedecode: invalid digit")

	// ErrOverflow indicates a value whose magnitude cannot be represented
	// exactly by the target numeric type.
	ErrOverflow = errors.New("basedecode: value overflows")
)

// decodeErrorf attaches detail to a sentinel while keeping it matchable.
func decodeErrorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w "+format, append([]any{sentinel}, args...)...)
}
