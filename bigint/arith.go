package bigint

import (
	"math/bits"

	"github.com/consensys/ctbig/secret"
)

// AddWord adds w at weight 1, in place, and returns the carry out of the top
// limb. The loop runs over every limb regardless of where the carry dies.
func (z *Int[T, W]) AddWord(w secret.Word[W]) secret.Word[W] {
	wB := z.BitsPerLimb()
	mask := limbMask[W](wB)
	carry := w.Raw()
	for i := range z.limbs {
		s, hi := bits.Add64(uint64(z.limbs[i]), uint64(carry), 0)
		if wB == 64 {
			z.limbs[i] = W(s)
			carry = W(hi)
		} else {
			z.limbs[i] = W(s) & mask
			carry = W(s>>wB | hi<<(64-wB))
		}
	}
	z.maskTop()
	return secret.NewWord(carry)
}

// MulWord multiplies z in place by a small public constant m and returns the
// overflow word. m is public; the limb values are not.
func (z *Int[T, W]) MulWord(m W) secret.Word[W] {
	wB := z.BitsPerLimb()
	mask := limbMask[W](wB)
	var carry W
	if wordBits[W]() == 64 {
		for i := range z.limbs {
			hi, lo := bits.Mul64(uint64(z.limbs[i]), uint64(m))
			lo, c := bits.Add64(lo, uint64(carry), 0)
			hi += c
			if wB == 64 {
				z.limbs[i] = W(lo)
				carry = W(hi)
			} else {
				z.limbs[i] = W(lo) & mask
				carry = W(lo>>wB | hi<<(64-wB))
			}
		}
	} else {
		for i := range z.limbs {
			t := uint64(z.limbs[i])*uint64(m) + uint64(carry)
			z.limbs[i] = W(t) & mask
			carry = W(t >> wB)
		}
	}
	z.maskTop()
	return secret.NewWord(carry)
}

// Div10 divides z by 10 in place and returns the remainder, in 0..9.
// Restoring division, one bit per step: the step count depends only on the
// limb count and width.
func (z *Int[T, W]) Div10() W {
	wB := z.BitsPerLimb()
	ten := secret.NewWord[W](10)
	var r W
	for i := len(z.limbs) - 1; i >= 0; i-- {
		w := z.limbs[i]
		var q W
		for j := int(wB) - 1; j >= 0; j-- {
			r = r<<1 | (w>>uint(j))&1
			ge := secret.NewWord(r).Gte(ten)
			r -= ge.Mask() & 10
			q = q<<1 | ge.Bit()
		}
		z.limbs[i] = q
	}
	return r
}
