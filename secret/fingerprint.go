// SPDX-License-Identifier: MIT

package secret

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/sha3"

	"github.com/katalvlaran/polysecret/interp"
)

// Fingerprint returns the hex SHA3-256 digest of points, in order.
// Each point contributes 16 bytes: x as a big-endian uint64 followed by the
// IEEE-754 bits of y. Two runs that used the same points in the same order
// share a fingerprint, which lets logs correlate results without printing
// share values.
func Fingerprint(points []interp.Point) string {
	h := sha3.New256()
	var buf [16]byte
	for _, p := range points {
		binary.BigEndian.PutUint64(buf[:8], uint64(p.X))
		binary.BigEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
