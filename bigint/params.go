package bigint

import (
	"github.com/consensys/gnark-crypto/ecc"
)

// Params fixes the shape of an [Int]: its bit width and the number of
// value-bearing bits per limb. Parameter sets are empty structs so the shape
// is carried by the type, not by values; to use a width not defined here it
// is sufficient to declare a new type implementing Params:
//
//	type U1024 struct{}
//	func (U1024) NbBits() uint      { return 1024 }
//	func (U1024) BitsPerLimb() uint { return 64 }
type Params interface {
	NbBits() uint
	BitsPerLimb() uint
}

// U64 parameterizes a 64-bit integer on saturated 64-bit limbs.
type U64 struct{}

func (U64) NbBits() uint      { return 64 }
func (U64) BitsPerLimb() uint { return 64 }

// U128 parameterizes a 128-bit integer on saturated 64-bit limbs.
type U128 struct{}

func (U128) NbBits() uint      { return 128 }
func (U128) BitsPerLimb() uint { return 64 }

// U255 parameterizes a 255-bit integer on saturated 64-bit limbs, the width
// of the Curve25519 field.
type U255 struct{}

func (U255) NbBits() uint      { return 255 }
func (U255) BitsPerLimb() uint { return 64 }

// U256 parameterizes a 256-bit integer on saturated 64-bit limbs.
type U256 struct{}

func (U256) NbBits() uint      { return 256 }
func (U256) BitsPerLimb() uint { return 64 }

// U384 parameterizes a 384-bit integer on saturated 64-bit limbs.
type U384 struct{}

func (U384) NbBits() uint      { return 384 }
func (U384) BitsPerLimb() uint { return 64 }

// U448 parameterizes a 448-bit integer on saturated 64-bit limbs, the width
// of the Curve448 field.
type U448 struct{}

func (U448) NbBits() uint      { return 448 }
func (U448) BitsPerLimb() uint { return 64 }

// U512 parameterizes a 512-bit integer on saturated 64-bit limbs.
type U512 struct{}

func (U512) NbBits() uint      { return 512 }
func (U512) BitsPerLimb() uint { return 64 }

// BN254Fp parameterizes integers as wide as the BN254 base field.
type BN254Fp struct{}

func (BN254Fp) NbBits() uint      { return uint(ecc.BN254.BaseField().BitLen()) }
func (BN254Fp) BitsPerLimb() uint { return 64 }

// BLS12377Fp parameterizes integers as wide as the BLS12-377 base field.
type BLS12377Fp struct{}

func (BLS12377Fp) NbBits() uint      { return uint(ecc.BLS12_377.BaseField().BitLen()) }
func (BLS12377Fp) BitsPerLimb() uint { return 64 }

// BLS12381Fp parameterizes integers as wide as the BLS12-381 base field.
type BLS12381Fp struct{}

func (BLS12381Fp) NbBits() uint      { return uint(ecc.BLS12_381.BaseField().BitLen()) }
func (BLS12381Fp) BitsPerLimb() uint { return 64 }

// BLS24315Fp parameterizes integers as wide as the BLS24-315 base field.
type BLS24315Fp struct{}

func (BLS24315Fp) NbBits() uint      { return uint(ecc.BLS24_315.BaseField().BitLen()) }
func (BLS24315Fp) BitsPerLimb() uint { return 64 }

// U255x51 parameterizes a 255-bit integer on 51-bit limbs in 64-bit words,
// the unsaturated radix used by Curve25519 implementations without
// add-with-carry.
type U255x51 struct{}

func (U255x51) NbBits() uint      { return 255 }
func (U255x51) BitsPerLimb() uint { return 51 }

// U256x29 parameterizes a 256-bit integer on 29-bit limbs in 32-bit words.
type U256x29 struct{}

func (U256x29) NbBits() uint      { return 256 }
func (U256x29) BitsPerLimb() uint { return 29 }

// U256x32 parameterizes a 256-bit integer on saturated 32-bit limbs.
type U256x32 struct{}

func (U256x32) NbBits() uint      { return 256 }
func (U256x32) BitsPerLimb() uint { return 32 }

// U64x32 parameterizes a 64-bit integer on saturated 32-bit limbs.
type U64x32 struct{}

func (U64x32) NbBits() uint      { return 64 }
func (U64x32) BitsPerLimb() uint { return 32 }
