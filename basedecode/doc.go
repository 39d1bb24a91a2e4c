// SPDX-License-Identifier: MIT

// Package basedecode converts share values written in bases 2–36 into
// integers.
//
// A share value is an unsigned positional literal: digits 0–9 followed by
// the letters a–z (case-insensitive) for bases above 10. Decoding is exact:
// instead of truncating or rounding, values that do not fit the target type
// fail with ErrOverflow.
//
//	Decode(2, "111")      // 7
//	Decode(4, "213")      // 39 = 2·16 + 1·4 + 3
//	DecodeString("16", "FF") // 255
//	Decode(2, "2")        // ErrInvalidDigit
//
// DecodeFloat adds the guarantee the reconstruction pipeline relies on: the
// returned float64 equals the decoded integer exactly (|v| ≤ 2^53).
package basedecode
