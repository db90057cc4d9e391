package bigint

import (
	"encoding/binary"
	"errors"

	"github.com/consensys/ctbig/debug"
	"github.com/consensys/ctbig/secret"
	"github.com/consensys/ctbig/words"
)

// Endianness selects the byte order of a canonical octet string. It is a
// property of the conversion, not of the integer.
type Endianness uint8

const (
	// LittleEndian stores the least significant byte at index 0.
	LittleEndian Endianness = iota
	// BigEndian stores the most significant byte at index 0.
	BigEndian
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return "unknown"
	}
}

// ErrShortBuffer is returned by Marshal when the destination cannot hold the
// canonical encoding.
var ErrShortBuffer = errors.New("bigint: destination buffer too small")

// Unmarshal sets z from a canonical octet string in the given byte order.
// Source bytes beyond the capacity of z are discarded, as are bits above
// NbBits-1: the result is the source value reduced modulo 2^NbBits.
//
// Control flow depends only on len(src) and the parameters of z.
func (z *Int[T, W]) Unmarshal(src []byte, e Endianness) {
	if z.NbBits() == 0 {
		z.SetZero()
		return
	}
	switch e {
	case LittleEndian:
		unmarshalLE(z.limbs, src, z.BitsPerLimb())
	case BigEndian:
		unmarshalBE(z.limbs, src, z.BitsPerLimb())
	}
	z.maskTop()
}

// Marshal writes the canonical octet string of z into dst in the given byte
// order. dst must hold at least ⌈NbBits/8⌉ bytes; a larger destination is
// zero-padded on the most significant side: at the low indices (big-endian)
// or at the high indices (little-endian).
//
// Control flow depends only on len(dst) and the parameters of z.
func (z *Int[T, W]) Marshal(dst []byte, e Endianness) error {
	if uint(len(dst)) < words.NbBytes(z.NbBits()) {
		debug.Assert(false, "bigint: marshal destination too small")
		return ErrShortBuffer
	}
	switch e {
	case LittleEndian:
		marshalLE(dst, z.limbs, z.BitsPerLimb())
	case BigEndian:
		marshalBE(dst, z.limbs, z.BitsPerLimb())
	}
	return nil
}

// Bytes returns the tight ⌈NbBits/8⌉-byte canonical octet string of z.
func (z *Int[T, W]) Bytes(e Endianness) []byte {
	buf := make([]byte, words.NbBytes(z.NbBits()))
	z.Marshal(buf, e)
	return buf
}

// SetUint64 sets z from a public scalar, truncated to NbBits.
func (z *Int[T, W]) SetUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	z.Unmarshal(buf[:], LittleEndian)
}

// unmarshalLE packs src, least significant byte first, into limbs of wBits
// value-bearing bits. A shift-register accumulator collects bits until a
// limb's worth is available; the bits a full limb leaves behind are
// recovered from the byte that produced them. Remaining limbs are zeroed.
func unmarshalLE[W secret.Unsigned](dst []W, src []byte, wBits uint) {
	mask := limbMask[W](wBits)
	var acc W
	var accLen uint
	di := 0
	for _, b := range src {
		acc |= W(b) << accLen
		accLen += 8
		for accLen >= wBits && di < len(dst) {
			dst[di] = acc & mask
			di++
			accLen -= wBits
			acc = W(b) >> (8 - accLen)
		}
	}
	if di < len(dst) && accLen > 0 {
		dst[di] = acc & mask
		di++
	}
	for ; di < len(dst); di++ {
		dst[di] = 0
	}
}

// unmarshalBE is unmarshalLE walking the source from its trailing (least
// significant) byte towards index 0.
func unmarshalBE[W secret.Unsigned](dst []W, src []byte, wBits uint) {
	mask := limbMask[W](wBits)
	var acc W
	var accLen uint
	di := 0
	for i := len(src) - 1; i >= 0; i-- {
		b := src[i]
		acc |= W(b) << accLen
		accLen += 8
		for accLen >= wBits && di < len(dst) {
			dst[di] = acc & mask
			di++
			accLen -= wBits
			acc = W(b) >> (8 - accLen)
		}
	}
	if di < len(dst) && accLen > 0 {
		dst[di] = acc & mask
		di++
	}
	for ; di < len(dst); di++ {
		dst[di] = 0
	}
}

// marshalLE unpacks limbs into dst, least significant byte at index 0.
// Saturated limbs are stored a whole word at a time; unsaturated limbs go
// through a shift-register mirroring unmarshalLE. Excess destination bytes
// at the high indices end up zero.
func marshalLE[W secret.Unsigned](dst []byte, src []W, wBits uint) {
	if wBits == wordBits[W]() {
		wb := int(wBits / 8)
		bi := 0
		for _, w := range src {
			if len(dst)-bi >= wb {
				storeLE(dst[bi:], w)
				bi += wb
			} else {
				for j := 0; bi < len(dst); j++ {
					dst[bi] = byte(w >> (8 * uint(j)))
					bi++
				}
			}
		}
		for ; bi < len(dst); bi++ {
			dst[bi] = 0
		}
		return
	}

	mask := limbMask[W](wBits)
	var acc W
	var accLen uint
	bi := 0
	for _, w := range src {
		w &= mask
		acc |= w << accLen
		accLen += wBits
		for accLen >= 8 && bi < len(dst) {
			dst[bi] = byte(acc)
			bi++
			accLen -= 8
			acc = w >> (wBits - accLen)
		}
	}
	if bi < len(dst) && accLen > 0 {
		dst[bi] = byte(acc)
		bi++
	}
	for ; bi < len(dst); bi++ {
		dst[bi] = 0
	}
}

// marshalBE mirrors marshalLE: whole words land at a cursor moving back from
// the trailing end of dst, and the most significant byte ends up at dst[0].
// Excess destination bytes at the low indices end up zero.
func marshalBE[W secret.Unsigned](dst []byte, src []W, wBits uint) {
	if wBits == wordBits[W]() {
		wb := int(wBits / 8)
		tail := len(dst)
		for _, w := range src {
			if tail >= wb {
				tail -= wb
				storeBE(dst[tail:], w)
			} else {
				for j := 0; j < tail; j++ {
					dst[tail-1-j] = byte(w >> (8 * uint(j)))
				}
				tail = 0
			}
		}
		for i := 0; i < tail; i++ {
			dst[i] = 0
		}
		return
	}

	mask := limbMask[W](wBits)
	var acc W
	var accLen uint
	bi := 0
	for _, w := range src {
		w &= mask
		acc |= w << accLen
		accLen += wBits
		for accLen >= 8 && bi < len(dst) {
			dst[len(dst)-1-bi] = byte(acc)
			bi++
			accLen -= 8
			acc = w >> (wBits - accLen)
		}
	}
	if bi < len(dst) && accLen > 0 {
		dst[len(dst)-1-bi] = byte(acc)
		bi++
	}
	for ; bi < len(dst); bi++ {
		dst[len(dst)-1-bi] = 0
	}
}

func storeLE[W secret.Unsigned](b []byte, w W) {
	if wordBits[W]() == 64 {
		binary.LittleEndian.PutUint64(b, uint64(w))
	} else {
		binary.LittleEndian.PutUint32(b, uint32(w))
	}
}

func storeBE[W secret.Unsigned](b []byte, w W) {
	if wordBits[W]() == 64 {
		binary.BigEndian.PutUint64(b, uint64(w))
	} else {
		binary.BigEndian.PutUint32(b, uint32(w))
	}
}
