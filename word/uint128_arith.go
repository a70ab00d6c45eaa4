package word

import "math/big"

// This file is part of the word package. See the documentation of word.go for general remarks.

// Arith128 implements [Arith] for [Uint128].
type Arith128 struct{}

func (Arith128) Bits() int { return 128 }

func (Arith128) FromUint64(x uint64) Uint128 { return Uint128{x, 0} }

func (Arith128) Low64(x Uint128) uint64 { return x[0] }

func (Arith128) Max() Uint128 { return Uint128{^uint64(0), ^uint64(0)} }

func (Arith128) Add(x, y Uint128) (sum Uint128, carry bool) {
	c := sum.AddWithCarry(&x, &y)
	return sum, c != 0
}

func (Arith128) Sub(x, y Uint128) (diff Uint128, borrow bool) {
	b := diff.SubWithBorrow(&x, &y)
	return diff, b != 0
}

func (Arith128) Mul(x, y Uint128) (z Uint128) {
	z.Mul(&x, &y)
	return
}

func (Arith128) MulWide(x, y Uint128) (hi, lo Uint128) {
	return MulWide128(&x, &y)
}

func (Arith128) Less(x, y Uint128) bool { return x.Less(&y) }

func (Arith128) Lsh(x Uint128, n uint) (z Uint128) {
	z.Lsh(&x, n)
	return
}

func (Arith128) Rsh(x Uint128, n uint) (z Uint128) {
	z.Rsh(&x, n)
	return
}

func (Arith128) Bit(x Uint128, i int) uint { return x.Bit(i) }

func (Arith128) BitLen(x Uint128) int { return x.BitLen() }

func (Arith128) DivMod(x, y Uint128) (q, r Uint128) {
	if y.IsZero() {
		panic(ErrorPrefix + "division by zero")
	}
	return divWide128(Uint128{}, x, y)
}

func (Arith128) DivWide(hi, lo, d Uint128) (q, r Uint128) {
	return divWide128(hi, lo, d)
}

func (Arith128) Select(cond bool, x, y Uint128) Uint128 {
	var mask uint64
	if cond {
		mask = ^uint64(0)
	}
	return Uint128{
		y[0] ^ ((x[0] ^ y[0]) & mask),
		y[1] ^ ((x[1] ^ y[1]) & mask),
	}
}

func (Arith128) ToBig(x Uint128) *big.Int { return x.ToBigInt() }

func (Arith128) FromBig(x *big.Int) (result Uint128, ok bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Uint128{}, false
	}
	return Uint128FromBigInt(x), true
}
