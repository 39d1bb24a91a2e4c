// SPDX-License-Identifier: MIT

package basedecode

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// MinBase is the smallest supported radix.
	MinBase = 2

	// MaxBase is the largest supported radix (digits 0-9 then a-z).
	MaxBase = 36

	// MaxExactFloat is the largest integer magnitude (2^53) that float64
	// represents exactly together with all smaller integers.
	MaxExactFloat = 1 << 53
)

// ValidateBase reports ErrInvalidBase unless MinBase ≤ base ≤ MaxBase.
func ValidateBase(base int) error {
	if base < MinBase || base > MaxBase {
		return decodeErrorf(ErrInvalidBase, "%d", base)
	}

	return nil
}

// ParseBase parses a decimal base such as "16" (surrounding spaces allowed)
// and validates its range.
func ParseBase(s string) (int, error) {
	b, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || b < MinBase || b > MaxBase {
		return 0, decodeErrorf(ErrInvalidBase, "%q", s)
	}

	return b, nil
}

// digitValue maps '0'-'9', 'a'-'z' and 'A'-'Z' to 0..35.
func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// Decode interprets digits as an unsigned integer literal in the given base.
//
// Implementation:
//   - Stage 1: validate base and reject an empty literal.
//   - Stage 2: accumulate acc = acc*base + digit with 64-bit carry detection;
//     keep scanning after an overflow so a bad digit is still reported first.
//
// Behavior highlights:
//   - Letters are case-insensitive; no sign, prefix, separator or whitespace
//     is accepted.
//   - Leading zeros are allowed ("007" in base 8 is 7).
//
// Errors:
//   - ErrInvalidBase  (base outside [2,36]).
//   - ErrInvalidDigit (empty literal or a character invalid for base).
//   - ErrOverflow     (value > math.MaxInt64).
//
// Complexity:
//   - Time O(len(digits)), Space O(1).
func Decode(base int, digits string) (int64, error) {
	if err := ValidateBase(base); err != nil {
		return 0, err
	}
	if digits == "" {
		return 0, decodeErrorf(ErrInvalidDigit, "(empty value) for base %d", base)
	}

	var (
		acc      uint64
		hi, lo   uint64
		carry    uint64
		overflow bool
		b        = uint64(base)
	)
	for i, r := range digits {
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, decodeErrorf(ErrInvalidDigit, "%q at position %d for base %d", r, i, base)
		}
		if overflow {
			continue
		}
		hi, lo = bits.Mul64(acc, b)
		acc, carry = bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 || acc > math.MaxInt64 {
			overflow = true
		}
	}
	if overflow {
		return 0, decodeErrorf(ErrOverflow, "%q in base %d exceeds int64", digits, base)
	}

	return int64(acc), nil
}

// DecodeString combines ParseBase and Decode for bases carried as text.
func DecodeString(base, digits string) (int64, error) {
	b, err := ParseBase(base)
	if err != nil {
		return 0, err
	}

	return Decode(b, digits)
}

// DecodeFloat decodes digits and converts the result to float64, failing with
// ErrOverflow when the value is larger than MaxExactFloat and so would be
// silently rounded by the conversion.
func DecodeFloat(base int, digits string) (float64, error) {
	v, err := Decode(base, digits)
	if err != nil {
		return 0, err
	}
	if v > MaxExactFloat {
		return 0, decodeErrorf(ErrOverflow, "%q in base %d exceeds 2^53", digits, base)
	}

	return float64(v), nil
}

// Encode renders a non-negative v in base using lowercase digits.
// It is the inverse of Decode.
//
// Errors:
//   - ErrInvalidBase (base outside [2,36]).
//   - ErrOverflow    (negative v has no unsigned representation).
func Encode(base int, v int64) (string, error) {
	if err := ValidateBase(base); err != nil {
		return "", err
	}
	if v < 0 {
		return "", decodeErrorf(ErrOverflow, "negative value %d", v)
	}

	return strconv.FormatInt(v, base), nil
}
