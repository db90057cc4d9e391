// Package ctbig provides constant-time canonicalization of fixed-width big
// integers for elliptic-curve and pairing-based cryptography.
//
// ctbig converts between the limb representation of an unsigned integer and
// its canonical external encodings:
//   - raw octet strings, little- or big-endian
//   - 0x-prefixed hexadecimal text
//   - decimal text
//
// Conversions on the secret path (octet packing, decimal digit processing)
// have control flow and memory-access patterns that depend only on public
// lengths, never on the values being converted. See the bigint package for
// the conversion entry points, and the secret package for the branch-free
// word and boolean types they produce and consume.
package ctbig

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
