// Package stablehash computes a content hash of formatted output, used to
// cheaply compare two print results (e.g. "does formatting twice converge")
// without keeping the full text of both around.
package stablehash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/dchest/siphash"
)

// key is fixed rather than random: callers compare hashes across separate
// processes and runs, so the hash must be deterministic for identical input,
// not merely collision-resistant within one process.
const k0, k1 uint64 = 0x6f726d6174746572, 0x70636f726570726e

// Sum returns the 128-bit siphash-2-4 digest of text, hex-encoded.
func Sum(text string) string {
	hi, lo := siphash.Hash128(k0, k1, []byte(text))
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[0:8], hi)
	binary.LittleEndian.PutUint64(buf[8:16], lo)
	return hex.EncodeToString(buf)
}

// Equal reports whether a and b hash identically.
func Equal(a, b string) bool {
	return Sum(a) == Sum(b)
}
