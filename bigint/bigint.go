package bigint

import (
	"fmt"
	"math/bits"

	"github.com/consensys/ctbig/secret"
	"github.com/consensys/ctbig/words"
)

// Int is a fixed-width unsigned integer stored as a little-endian limb
// sequence: limb 0 carries the least significant bits. Each limb holds the
// low BitsPerLimb bits of its word; the bits above, and the bits above
// NbBits-1 overall, are always zero.
//
// Distinct Ints may be used concurrently; calls sharing a destination
// require external synchronization.
type Int[T Params, W secret.Unsigned] struct {
	limbs []W
}

// New allocates a zero Int for the given parameter set. It panics when the
// parameters are malformed: bits-per-limb outside 1..8*sizeof(W), or a bit
// width large enough to overflow decimal length arithmetic. These are
// programming errors in the parameter set, not runtime conditions.
func New[T Params, W secret.Unsigned]() *Int[T, W] {
	var fp T
	b, w := fp.NbBits(), fp.BitsPerLimb()
	if w == 0 || w > wordBits[W]() {
		panic(fmt.Sprintf("bigint: parameter set declares %d bits per limb on a %d-bit word", w, wordBits[W]()))
	}
	words.DecimalLength(b)
	return &Int[T, W]{limbs: make([]W, words.NbWords(b, w))}
}

// NbBits returns the fixed bit width of z.
func (z *Int[T, W]) NbBits() uint {
	var fp T
	return fp.NbBits()
}

// BitsPerLimb returns the number of value-bearing bits per limb.
func (z *Int[T, W]) BitsPerLimb() uint {
	var fp T
	return fp.BitsPerLimb()
}

// NbLimbs returns the length of the limb sequence.
func (z *Int[T, W]) NbLimbs() uint { return uint(len(z.limbs)) }

// Limbs returns the underlying limb slice, least significant limb first.
// The limbs are sensitive.
func (z *Int[T, W]) Limbs() []W { return z.limbs }

// SetZero sets z to 0, wiping every limb.
func (z *Int[T, W]) SetZero() {
	for i := range z.limbs {
		z.limbs[i] = 0
	}
}

// Set copies x into z.
func (z *Int[T, W]) Set(x *Int[T, W]) {
	copy(z.limbs, x.limbs)
}

// Equal reports whether z == x without revealing either value.
func (z *Int[T, W]) Equal(x *Int[T, W]) secret.Bool[W] {
	var acc W
	for i := range z.limbs {
		acc |= z.limbs[i] ^ x.limbs[i]
	}
	return secret.NewWord(acc).Eq(secret.NewWord[W](0))
}

// maskTop clears the bits of the top limb above position NbBits-1.
func (z *Int[T, W]) maskTop() {
	if len(z.limbs) == 0 {
		return
	}
	top := z.NbBits() - (uint(len(z.limbs))-1)*z.BitsPerLimb()
	z.limbs[len(z.limbs)-1] &= limbMask[W](top)
}

// wordBits returns the width of the limb type in bits.
func wordBits[W secret.Unsigned]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// limbMask returns a mask selecting the low wBits bits of a word. For wBits
// equal to the word width the shift overflows to zero and the subtraction
// yields all ones.
func limbMask[W secret.Unsigned](wBits uint) W {
	return W(1)<<wBits - 1
}

// zeroize wipes an intermediate buffer that held secret bytes.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
