package bigint_test

import (
	"io"
	"math/big"

	"github.com/consensys/ctbig/bigint"
	"github.com/consensys/ctbig/secret"
	"github.com/consensys/ctbig/words"
	"golang.org/x/crypto/sha3"
)

// newShake returns a deterministic byte stream so failures reproduce.
func newShake(domain string) io.Reader {
	h := sha3.NewShake128()
	h.Write([]byte(domain))
	return h
}

// randomize fills z from the byte stream, reduced to its bit width.
func randomize[T bigint.Params, W secret.Unsigned](z *bigint.Int[T, W], rng io.Reader) {
	buf := make([]byte, words.NbBytes(z.NbBits()))
	rng.Read(buf)
	z.Unmarshal(buf, bigint.LittleEndian)
}

// toBig recomposes the integer value of the limb sequence. Test-side only;
// math/big is variable-time.
func toBig[T bigint.Params, W secret.Unsigned](z *bigint.Int[T, W]) *big.Int {
	r := new(big.Int)
	limbs := z.Limbs()
	tmp := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		r.Lsh(r, z.BitsPerLimb())
		r.Or(r, tmp.SetUint64(uint64(limbs[i])))
	}
	return r
}

// capMask returns 2^nbBits - 1.
func capMask(nbBits uint) *big.Int {
	r := big.NewInt(1)
	r.Lsh(r, nbBits)
	return r.Sub(r, big.NewInt(1))
}
