package word

import (
	"math/big"
	"math/bits"
)

// This file is part of the word package. See the documentation of word.go for general remarks.

// Unsigned is the set of native unsigned integer types that [Native] can operate on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Native implements [Arith] for the native unsigned integer types.
//
// Double-width products for widths up to 32 bits are computed directly in an uint64; for 64 bits, we use [bits.Mul64].
type Native[T Unsigned] struct{}

// Dictionaries for the native widths.
type (
	Arith8  = Native[uint8]
	Arith16 = Native[uint16]
	Arith32 = Native[uint32]
	Arith64 = Native[uint64]
)

func (Native[T]) Bits() int {
	return bits.Len64(uint64(^T(0)))
}

func (Native[T]) FromUint64(x uint64) T {
	return T(x)
}

func (Native[T]) Low64(x T) uint64 {
	return uint64(x)
}

func (Native[T]) Max() T {
	return ^T(0)
}

func (Native[T]) Add(x, y T) (sum T, carry bool) {
	sum = x + y
	carry = sum < x
	return
}

func (Native[T]) Sub(x, y T) (diff T, borrow bool) {
	return x - y, x < y
}

func (Native[T]) Mul(x, y T) T {
	return x * y
}

func (a Native[T]) MulWide(x, y T) (hi, lo T) {
	w := a.Bits()
	if w == 64 {
		h, l := bits.Mul64(uint64(x), uint64(y))
		return T(h), T(l)
	}
	p := uint64(x) * uint64(y) // cannot overflow for w <= 32
	return T(p >> w), T(p)
}

func (Native[T]) Less(x, y T) bool {
	return x < y
}

func (Native[T]) Lsh(x T, n uint) T {
	return x << n
}

func (Native[T]) Rsh(x T, n uint) T {
	return x >> n
}

func (Native[T]) Bit(x T, i int) uint {
	return uint(x>>i) & 1
}

func (Native[T]) BitLen(x T) int {
	return bits.Len64(uint64(x))
}

func (Native[T]) DivMod(x, y T) (q, r T) {
	return x / y, x % y
}

func (a Native[T]) DivWide(hi, lo, d T) (q, r T) {
	w := a.Bits()
	if w == 64 {
		q64, r64 := bits.Div64(uint64(hi), uint64(lo), uint64(d)) // panics if hi >= d
		return T(q64), T(r64)
	}
	if hi >= d {
		panic(ErrorPrefix + "DivWide: quotient overflow")
	}
	num := uint64(hi)<<w | uint64(lo)
	return T(num / uint64(d)), T(num % uint64(d))
}

// Select is written as a mask computation so that the compiler can emit a conditional move.
func (Native[T]) Select(cond bool, x, y T) T {
	var mask T
	if cond {
		mask = ^T(0)
	}
	return y ^ ((x ^ y) & mask)
}

func (Native[T]) ToBig(x T) *big.Int {
	return new(big.Int).SetUint64(uint64(x))
}

func (a Native[T]) FromBig(x *big.Int) (result T, ok bool) {
	if x.Sign() < 0 || x.BitLen() > a.Bits() {
		return 0, false
	}
	return T(x.Uint64()), true
}
