package word

import (
	"math/big"
	"math/bits"

	"github.com/GottfriedHerold/montgomery/internal/utils"
)

// This file is part of the word package. See the documentation of word.go for general remarks.

// This file defines the Uint128 type, a 128-bit unsigned integer stored as two 64-bit limbs.
// The arithmetic is carried out limb-wise with the carry-aware functions from math/bits.
// [Arith128] (defined in uint128_arith.go) exposes this as an [Arith] dictionary.

// Uint128 is a 128-bit unsigned integer. The limbs are stored low-endian, i.e. the value is z[1]*2^64 + z[0].
type Uint128 [2]uint64

// Uint128FromUint64 returns x as a Uint128.
func Uint128FromUint64(x uint64) Uint128 {
	return Uint128{x, 0}
}

// Uint128FromBigInt converts 0 <= x < 2^128 to Uint128. It panics if x is out of range.
func Uint128FromBigInt(x *big.Int) (result Uint128) {
	utils.BigIntToUIntSlice(x, result[:])
	return
}

// ToBigInt converts z to a big.Int.
func (z *Uint128) ToBigInt() *big.Int {
	return utils.UIntSliceToInt(z[:])
}

// String returns the decimal representation of z.
func (z Uint128) String() string {
	return z.ToBigInt().String()
}

// Add computes z := x + y modulo 2^128.
func (z *Uint128) Add(x, y *Uint128) {
	var carry uint64
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], _ = bits.Add64(x[1], y[1], carry)
}

// AddWithCarry computes z := x + y modulo 2^128 and returns the carry (0 or 1)
func (z *Uint128) AddWithCarry(x, y *Uint128) (carry uint64) {
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	return
}

// Sub computes z := x - y modulo 2^128.
func (z *Uint128) Sub(x, y *Uint128) {
	var borrow uint64
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], _ = bits.Sub64(x[1], y[1], borrow)
}

// SubWithBorrow computes z := x - y modulo 2^128 and returns the borrow (0 or 1)
func (z *Uint128) SubWithBorrow(x, y *Uint128) (borrow uint64) {
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	return
}

// Mul computes z := x * y modulo 2^128.
func (z *Uint128) Mul(x, y *Uint128) {
	hi, lo := bits.Mul64(x[0], y[0])
	hi += x[0]*y[1] + x[1]*y[0]
	z[0], z[1] = lo, hi
}

// MulWide128 computes the 256-bit product x*y == hi * 2^128 + lo.
//
// We do the schoolbook 4-way cross multiplication of the 64-bit halves:
// with x == x1*2^64 + x0 and y == y1*2^64 + y0, the product is
// x0y0 + (x0y1 + x1y0) * 2^64 + x1y1 * 2^128, where each partial product is itself a 128-bit value.
func MulWide128(x, y *Uint128) (hi, lo Uint128) {
	h00, l00 := bits.Mul64(x[0], y[0])
	h01, l01 := bits.Mul64(x[0], y[1])
	h10, l10 := bits.Mul64(x[1], y[0])
	h11, l11 := bits.Mul64(x[1], y[1])

	var w1, w2, w3, carry uint64

	// (w1, w2, w3) := (h00, l11, h11) + (l01, h01, 0)
	w1, carry = bits.Add64(h00, l01, 0)
	w2, carry = bits.Add64(l11, h01, carry)
	w3, _ = bits.Add64(h11, 0, carry)

	// (w1, w2, w3) += (l10, h10, 0)
	// The final carry is zero, since the product is < 2^256.
	w1, carry = bits.Add64(w1, l10, 0)
	w2, carry = bits.Add64(w2, h10, carry)
	w3, _ = bits.Add64(w3, 0, carry)

	lo = Uint128{l00, w1}
	hi = Uint128{w2, w3}
	return
}

// IsZero checks whether z is zero.
func (z *Uint128) IsZero() bool {
	return z[0]|z[1] == 0
}

// Cmp compares z and x and returns -1, 0, +1 if z < x, z == x, z > x respectively.
func (z *Uint128) Cmp(x *Uint128) int {
	switch {
	case z[1] < x[1]:
		return -1
	case z[1] > x[1]:
		return +1
	case z[0] < x[0]:
		return -1
	case z[0] > x[0]:
		return +1
	default:
		return 0
	}
}

// Less checks whether z < x.
func (z *Uint128) Less(x *Uint128) bool {
	_, borrow := bits.Sub64(z[0], x[0], 0)
	_, borrow = bits.Sub64(z[1], x[1], borrow)
	return borrow != 0
}

// Lsh computes z := x << n modulo 2^128.
func (z *Uint128) Lsh(x *Uint128, n uint) {
	switch {
	case n >= 128:
		z[0], z[1] = 0, 0
	case n >= 64:
		z[1] = x[0] << (n - 64)
		z[0] = 0
	case n == 0:
		*z = *x
	default:
		z[1] = x[1]<<n | x[0]>>(64-n)
		z[0] = x[0] << n
	}
}

// Rsh computes z := x >> n.
func (z *Uint128) Rsh(x *Uint128, n uint) {
	switch {
	case n >= 128:
		z[0], z[1] = 0, 0
	case n >= 64:
		z[0] = x[1] >> (n - 64)
		z[1] = 0
	case n == 0:
		*z = *x
	default:
		z[0] = x[0]>>n | x[1]<<(64-n)
		z[1] = x[1] >> n
	}
}

// BitLen returns the number of bits needed to represent z.
func (z *Uint128) BitLen() int {
	if z[1] != 0 {
		return 64 + bits.Len64(z[1])
	}
	return bits.Len64(z[0])
}

// Bit returns bit i of z.
func (z *Uint128) Bit(i int) uint {
	return uint(z[i/64]>>(uint(i)%64)) & 1
}

// divWide128 divides the 256-bit number hi * 2^128 + lo by d. It requires hi < d.
//
// If d fits into 64 bits, we use two calls to [bits.Div64].
// Otherwise, we fall back to bitwise restoring division, which processes one quotient bit per iteration.
// This is slow, but only used when setting up moduli and in the non-Montgomery reference functions.
func divWide128(hi, lo, d Uint128) (q, r Uint128) {
	if !hi.Less(&d) {
		panic(ErrorPrefix + "DivWide: quotient overflow")
	}
	if d[1] == 0 {
		// hi < d implies hi[1] == 0 and hi[0] < d[0]
		var rem uint64
		q[1], rem = bits.Div64(hi[0], lo[1], d[0])
		q[0], rem = bits.Div64(rem, lo[0], d[0])
		r = Uint128{rem, 0}
		return
	}

	// Invariant: r < d at the start of each iteration.
	r = hi
	for i := 127; i >= 0; i-- {
		// (r, carry) := 2*r + next bit of lo. As r < d, the true value 2r+1 is < 2d, so subtracting d once suffices.
		carry := r[1] >> 63
		r.Lsh(&r, 1)
		r[0] |= uint64(lo.Bit(i))
		if carry != 0 || !r.Less(&d) {
			r.Sub(&r, &d) // if carry != 0, this wraps around to the correct value.
			q[i/64] |= 1 << (uint(i) % 64)
		}
	}
	return
}
