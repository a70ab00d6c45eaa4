package modular

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/word"
)

// GCD returns the greatest common divisor of x and y, using Euclid's algorithm. GCD(0,0) == 0.
func GCD[W comparable, A word.Arith[W]](x, y W) W {
	var a A
	var zero W
	for y != zero {
		_, r := a.DivMod(x, y)
		x, y = y, r
	}
	return x
}

// MultiplicativeInverse returns the unique inv in (0, m) with x * inv == 1 mod m.
// If no such inverse exists, i.e. if gcd(x, m) != 1, it returns 0.
// We require m > 1 and x < m.
//
// This is the extended Euclidean algorithm, run on unsigned remainders. We only track the Bezout coefficient
// of x (the one of m is never needed). Those coefficients are signed, but they are computed with wraparound arithmetic
// on W and interpreted in two's complement. This is exact, because the true coefficient at the end satisfies
// |coefficient| <= m/2 < R/2, and intermediate overflow does not matter for arithmetic modulo R.
func MultiplicativeInverse[W comparable, A word.Arith[W]](x, m W) W {
	var a A
	var zero W
	one := a.FromUint64(1)
	if contracts.Level >= contracts.Basic {
		contracts.Pre(a.Less(one, m), ErrorPrefix+"MultiplicativeInverse: modulus %v must be > 1", m)
		checkPrereduced[W, A]("MultiplicativeInverse", m, x)
	}

	// Invariant: a_i == y_i * x mod m for the remainders a_i and their coefficients y_i.
	// (a0, a1, a2) are three consecutive remainders, y0 is the coefficient for a2 before the update.
	var (
		a1 = m
		a2 = x
		y1 = zero // coefficient of m
		y0 = one  // coefficient of x
		q  = zero
		a0 W
		y2 W
	)
	for a2 != zero {
		y2, _ = a.Sub(y0, a.Mul(q, y1))
		y0, y1 = y1, y2
		a0, a1 = a1, a2
		q, a2 = a.DivMod(a0, a1)
	}
	// a1 is now gcd(x, m) and y1 its coefficient.
	if a1 != one {
		return zero
	}
	negative := a.Bit(y1, a.Bits()-1) == 1
	adjusted, _ := a.Add(y1, m)
	inv := a.Select(negative, adjusted, y1)

	if contracts.Level >= contracts.Full {
		contracts.Post(MulPrereduced[W, A](x, inv, m) == one, ErrorPrefix+"MultiplicativeInverse: wrong result %v for %v mod %v", inv, x, m)
	}
	return inv
}
