package montgomery

import (
	"math/bits"

	"github.com/GottfriedHerold/montgomery/internal/contracts"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// This file contains exponentiation in Montgomery form.

// Pow returns base^exponent. We define 0^0 == 1.
//
// This is right-to-left square-and-multiply. The accumulator starts at base or unity, depending on the lowest exponent bit;
// this saves the multiplication by unity. The multiplication in each round is computed unconditionally and the result is
// selected, so that the squaring and the multiplication of consecutive rounds can overlap.
func (f *Form[W, A, P]) Pow(base Value[W, P], exponent W) Value[W, P] {
	var a A
	if contracts.Level >= contracts.Basic {
		f.checkValid("Pow", base)
	}
	one := a.FromUint64(1)
	result := f.Select(a.Bit(exponent, 0) == 1, base, f.Unity().Value())
	for a.Less(one, exponent) {
		exponent = a.Rsh(exponent, 1)
		base = f.Square(base)
		product := f.Multiply(result, base)
		result = f.Select(a.Bit(exponent, 0) == 1, product, result)
	}
	return result
}

// PowArray returns bases[i]^exponent for each i, processing all bases in one pass over the exponent.
// The returned slice is newly allocated.
func (f *Form[W, A, P]) PowArray(bases []Value[W, P], exponent W) []Value[W, P] {
	var a A
	if contracts.Level >= contracts.Basic {
		f.checkValid("PowArray", bases...)
	}
	one := a.FromUint64(1)
	unity := f.Unity().Value()
	powers := make([]Value[W, P], len(bases))
	results := make([]Value[W, P], len(bases))
	lowBit := a.Bit(exponent, 0) == 1
	for i, base := range bases {
		powers[i] = base
		results[i] = f.Select(lowBit, base, unity)
	}
	for a.Less(one, exponent) {
		exponent = a.Rsh(exponent, 1)
		bit := a.Bit(exponent, 0) == 1
		for i := range powers {
			powers[i] = f.Square(powers[i])
			product := f.Multiply(results[i], powers[i])
			results[i] = f.Select(bit, product, results[i])
		}
	}
	return results
}

// smallTwoPow returns the Montgomery form of 2^k for 0 <= k < Bits.
//
// The Montgomery form of 2^k is REDC(2^k * R^2 mod n), and 2^k * (R^2 mod n) is just a shift of the precomputed constant.
// Its high word is < n, since R^2 mod n < n and 2^k < R. So a single REDC suffices and we need no convertIn.
func (f *Form[W, A, P]) smallTwoPow(k int) Value[W, P] {
	var a A
	var p P
	lo := a.Lsh(f.m.r2ModN, uint(k))
	hi := a.Rsh(f.m.r2ModN, uint(a.Bits()-k)) // shifting by Bits gives 0
	if contracts.Level >= contracts.Basic {
		contracts.Assert(a.Less(hi, f.m.n), ErrorPrefix+"smallTwoPow: high word %v of 2^%d * R^2 not below modulus %v", hi, k, f.m.n)
	}
	return Value[W, P]{p.redcWide(&f.m, hi, lo)}
}

// TwoPow returns 2^exponent in Montgomery form. This is faster than Pow(ConvertIn(2), exponent).
//
// We process the exponent from the top in chunks of log2(Bits) bits, so that each chunk is a valid argument to smallTwoPow.
// For each chunk, we square log2(Bits) times and multiply by the small power of two of the chunk.
func (f *Form[W, A, P]) TwoPow(exponent W) Value[W, P] {
	var a A
	chunkBits := bits.Len(uint(a.Bits())) - 1 // Bits is a power of 2
	chunkMask := uint64(1)<<chunkBits - 1
	chunk := func(shift int) int {
		return int(a.Low64(a.Rsh(exponent, uint(shift))) & chunkMask)
	}

	bitLen := a.BitLen(exponent)
	if bitLen <= chunkBits {
		return f.smallTwoPow(chunk(0))
	}
	shift := ((bitLen - 1) / chunkBits) * chunkBits
	result := f.smallTwoPow(chunk(shift))
	for shift -= chunkBits; shift >= 0; shift -= chunkBits {
		for i := 0; i < chunkBits; i++ {
			result = f.Square(result)
		}
		if k := chunk(shift); k != 0 {
			result = f.Multiply(result, f.smallTwoPow(k))
		}
	}
	return result
}
