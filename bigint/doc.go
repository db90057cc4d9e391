// Package bigint implements constant-time conversion between fixed-width
// unsigned integers held as limb sequences and their canonical external
// encodings: raw octet strings in either endianness, 0x-prefixed
// hexadecimal, and decimal text.
//
// An [Int] is parameterized by a [Params] set fixing its bit width and the
// number of value-bearing bits per limb, and by the limb type (uint32 or
// uint64). The bits-per-limb may be smaller than the limb type so that
// architectures without add-with-carry can work with unsaturated limbs.
//
// On the secret path (octet packing and unpacking, decimal digit
// processing) control flow and memory accesses depend only on public
// lengths and widths, never on the converted values. The hex codec's only
// value-dependent branch is the public 0x prefix check and the public
// validity error.
package bigint
