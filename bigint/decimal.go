package bigint

import (
	"github.com/consensys/ctbig/logger"
	"github.com/consensys/ctbig/secret"
	"github.com/consensys/ctbig/words"
)

// SetDecimalString parses an unsigned decimal string into z and reports
// success as a secret boolean. The result is false when the string is too
// long for the bit width (checked on public lengths before any digit is
// read) or when any character falls outside '0'..'9'. On failure the
// content of z is unspecified and must be discarded.
//
// The digit loop runs len(s) times whatever the characters are: an invalid
// character folds into the result instead of stopping the parse. Values
// exceeding NbBits wrap; range validation is out of scope.
func (z *Int[T, W]) SetDecimalString(s string) secret.Bool[W] {
	if !words.HasEnoughBitsForDecimal(z.NbBits(), uint(len(s))) {
		log := logger.Logger()
		log.Debug().
			Int("length", len(s)).
			Uint("nbBits", z.NbBits()).
			Msg("decimal string cannot fit bit width")
		return secret.False[W]()
	}

	z.SetZero()
	ok := secret.True[W]()
	zero := secret.NewWord[W]('0')
	nine := secret.NewWord[W]('9')
	for i := 0; i < len(s); i++ {
		c := secret.NewWord(W(s[i]))
		ok = ok.And(c.Gte(zero)).And(c.Lte(nine))
		z.AddWord(c.Sub(zero))
		if i != len(s)-1 {
			z.MulWord(10)
		}
	}
	return ok
}

// Decimal returns the decimal rendering of z, exactly
// DecimalLength(NbBits) characters long, leading zeros included. z is left
// unchanged; the working copy and the digit buffer are wiped before
// returning.
func (z *Int[T, W]) Decimal() string {
	n := words.DecimalLength(z.NbBits())
	buf := make([]byte, n)
	tmp := New[T, W]()
	tmp.Set(z)
	for i := int(n) - 1; i >= 0; i-- {
		buf[i] = '0' + byte(tmp.Div10())
	}
	tmp.SetZero()
	s := string(buf)
	zeroize(buf)
	return s
}

// MustFromDecimal allocates a new Int from a decimal string and panics when
// the parse fails. The panic message carries no part of the input.
func MustFromDecimal[T Params, W secret.Unsigned](s string) *Int[T, W] {
	z := New[T, W]()
	if ok := z.SetDecimalString(s); !ok.Declassify() {
		panic("bigint: invalid decimal string")
	}
	return z
}
