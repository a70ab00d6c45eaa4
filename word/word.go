// Package word provides the fixed-width unsigned integer arithmetic that the modular and Montgomery
// arithmetic packages are built on.
//
// All algorithms in this module are written once, generic over a raw word type W and an arithmetic "dictionary"
// type A satisfying [Arith][W]. The dictionary types are zero-size structs; their methods carry the actual
// operations. This way, a single implementation covers the native types uint8, uint16, uint32 and uint64 (via [Native])
// as well as the 128-bit type [Uint128] (via [Arith128]), for which Go has no native type.
//
// Throughout, R denotes 2^Bits, i.e. the implicit radix of the word type. Arithmetic that does not explicitly
// return a carry or borrow is modulo R.
package word

import "math/big"

// ErrorPrefix is the prefix used by all error message strings originating from this package.
const ErrorPrefix = "montgomery / word: "

// Arith is the set of operations on a raw word type W that the generic algorithms require.
//
// Implementations must be zero-size types, so that declaring var a A and calling a.Op(...) is free.
// Methods with preconditions do not check them unless documented otherwise.
type Arith[W comparable] interface {
	// Bits returns the bit-width of W. R is 2^Bits.
	Bits() int

	// FromUint64 converts x to W, truncating modulo R if needed.
	FromUint64(x uint64) W
	// Low64 returns x mod 2^64.
	Low64(x W) uint64
	// Max returns R-1.
	Max() W

	// Add returns x+y mod R and whether a carry occurred.
	Add(x, y W) (sum W, carry bool)
	// Sub returns x-y mod R and whether a borrow occurred (i.e. x < y)
	Sub(x, y W) (diff W, borrow bool)
	// Mul returns x*y mod R.
	Mul(x, y W) W
	// MulWide returns the full double-width product x*y == hi*R + lo.
	MulWide(x, y W) (hi, lo W)

	Less(x, y W) bool
	Lsh(x W, n uint) W
	Rsh(x W, n uint) W
	// Bit returns the i'th bit of x (0 or 1), counting from the least significant bit.
	Bit(x W, i int) uint
	// BitLen returns the minimal number of bits needed to represent x; BitLen(0) == 0.
	BitLen(x W) int

	// DivMod returns x/y and x%y. y must be non-zero.
	DivMod(x, y W) (q, r W)
	// DivWide divides the double-width value hi*R + lo by d. It requires hi < d, which ensures that the quotient fits.
	DivWide(hi, lo, d W) (q, r W)

	// Select returns x if cond holds, y otherwise.
	Select(cond bool, x, y W) W

	// ToBig converts x to a (newly allocated) *big.Int.
	ToBig(x W) *big.Int
	// FromBig converts 0 <= x < R to W. ok is false if x is out of range.
	FromBig(x *big.Int) (result W, ok bool)
}

// One returns the number 1 as W. This is a convenience function for generic code.
func One[W comparable, A Arith[W]]() W {
	var a A
	return a.FromUint64(1)
}

// IsOdd reports whether x is odd.
func IsOdd[W comparable, A Arith[W]](x W) bool {
	var a A
	return a.Bit(x, 0) == 1
}
