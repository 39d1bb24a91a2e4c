// SPDX-License-Identifier: MIT

package basedecode_test

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/polysecret/basedecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecode_KnownValues pins positional values across bases.
func TestDecode_KnownValues(t *testing.T) {
	tests := []struct {
		base   int
		digits string
		want   int64
	}{
		{2, "111", 7},
		{4, "213", 39}, // 2·16 + 1·4 + 3
		{10, "4", 4},
		{10, "12", 12},
		{10, "0", 0},
		{8, "007", 7},
		{16, "ff", 255},
		{16, "FF", 255},
		{16, "aB", 171},
		{36, "z", 35},
		{36, "10", 36},
		{2, "111111111111111111111111111111111111111111111111111111111111111", math.MaxInt64},
		{16, "7fffffffffffffff", math.MaxInt64},
	}

	for _, tc := range tests {
		got, err := basedecode.Decode(tc.base, tc.digits)
		require.NoErrorf(t, err, "Decode(%d, %q)", tc.base, tc.digits)
		assert.Equalf(t, tc.want, got, "Decode(%d, %q)", tc.base, tc.digits)
	}
}

// TestDecode_InvalidDigit covers out-of-range digits, symbols and empty input.
func TestDecode_InvalidDigit(t *testing.T) {
	tests := []struct {
		name   string
		base   int
		digits string
	}{
		{"two in binary", 2, "2"},
		{"nine in octal", 8, "19"},
		{"g in hex", 16, "1g"},
		{"sign", 10, "-5"},
		{"plus", 10, "+5"},
		{"space", 10, "1 2"},
		{"prefix", 16, "0xff"},
		{"underscore", 10, "1_000"},
		{"empty", 10, ""},
		{"non-ascii", 36, "zé"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := basedecode.Decode(tc.base, tc.digits)
			require.ErrorIs(t, err, basedecode.ErrInvalidDigit)
		})
	}
}

// TestDecode_InvalidDigitMessage checks that the offending rune is reported.
func TestDecode_InvalidDigitMessage(t *testing.T) {
	_, err := basedecode.Decode(16, "12z4")
	require.ErrorIs(t, err, basedecode.ErrInvalidDigit)
	require.Contains(t, err.Error(), "'z'")
	require.Contains(t, err.Error(), "position 2")
}

// TestDecode_InvalidBase covers both integer and string entry points.
func TestDecode_InvalidBase(t *testing.T) {
	for _, b := range []int{-1, 0, 1, 37, 64} {
		_, err := basedecode.Decode(b, "1")
		require.ErrorIsf(t, err, basedecode.ErrInvalidBase, "base %d", b)
	}

	for _, s := range []string{"", "ten", "1.5", "37", "1", "0x10"} {
		_, err := basedecode.DecodeString(s, "1")
		require.ErrorIsf(t, err, basedecode.ErrInvalidBase, "base %q", s)
		require.Containsf(t, err.Error(), strconv.Quote(s), "message names %q", s)
	}

	b, err := basedecode.ParseBase(" 16 ")
	require.NoError(t, err)
	require.Equal(t, 16, b)
}

// TestDecode_Overflow ensures values past int64 fail instead of wrapping.
func TestDecode_Overflow(t *testing.T) {
	_, err := basedecode.Decode(16, "8000000000000000") // MaxInt64 + 1
	require.ErrorIs(t, err, basedecode.ErrOverflow)

	_, err = basedecode.Decode(36, strings.Repeat("z", 20))
	require.ErrorIs(t, err, basedecode.ErrOverflow)

	_, err = basedecode.Decode(10, "99999999999999999999999")
	require.ErrorIs(t, err, basedecode.ErrOverflow)

	// A bad digit after the overflow point is still reported as such.
	_, err = basedecode.Decode(10, "99999999999999999999999x")
	require.ErrorIs(t, err, basedecode.ErrInvalidDigit)
}

// TestDecodeFloat_ExactRange checks the 2^53 boundary.
func TestDecodeFloat_ExactRange(t *testing.T) {
	v, err := basedecode.DecodeFloat(10, strconv.FormatInt(basedecode.MaxExactFloat, 10))
	require.NoError(t, err)
	require.Equal(t, float64(basedecode.MaxExactFloat), v)

	_, err = basedecode.DecodeFloat(10, strconv.FormatInt(basedecode.MaxExactFloat+1, 10))
	require.ErrorIs(t, err, basedecode.ErrOverflow)

	v, err = basedecode.DecodeFloat(4, "213")
	require.NoError(t, err)
	require.Equal(t, 39.0, v)
}

// TestEncodeDecode_RoundTrip checks Decode(Encode(v)) == v for every base.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(36))
	for base := basedecode.MinBase; base <= basedecode.MaxBase; base++ {
		for i := 0; i < 50; i++ {
			v := rng.Int63()
			s, err := basedecode.Encode(base, v)
			require.NoError(t, err)

			got, err := basedecode.Decode(base, s)
			require.NoError(t, err)
			require.Equalf(t, v, got, "base %d literal %q", base, s)

			// Upper-case literals decode to the same value.
			got, err = basedecode.Decode(base, strings.ToUpper(s))
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}

	_, err := basedecode.Encode(10, -1)
	require.ErrorIs(t, err, basedecode.ErrOverflow)
	_, err = basedecode.Encode(1, 5)
	require.ErrorIs(t, err, basedecode.ErrInvalidBase)
}
