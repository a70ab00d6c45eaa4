package modular

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/word"
)

// InverseModR returns the unique x with x * n == 1 mod R, where R = 2^Bits. n must be odd.
//
// This is the method of Dumas (2012), "On Newton-Raphson iteration for multiplicative inverses modulo prime powers":
// The seed (3n) xor 2 is correct modulo 2^5. Setting y = 1 - n*x, each iteration x *= (1+y), y *= y doubles the
// number of correct bits, where the update of y only depends on y itself and runs in parallel with the update of x.
//
// For words wider than 64 bits, we compute the inverse modulo 2^64 first and extend it with a Newton step
// x *= (2 - n*x), which again doubles the number of correct bits.
func InverseModR[W comparable, A word.Arith[W]](n W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		contracts.Pre(word.IsOdd[W, A](n), ErrorPrefix+"InverseModR: %v is not odd", n)
	}
	one := a.FromUint64(1)
	var x W
	if a.Bits() > 64 {
		x = a.FromUint64(InverseModR[uint64, word.Arith64](a.Low64(n)))
		for goodBits := 64; goodBits < a.Bits(); goodBits *= 2 {
			t, _ := a.Sub(a.FromUint64(2), a.Mul(n, x))
			x = a.Mul(x, t)
		}
	} else {
		// Only the low 5 bits of the seed matter, so we may compute it in uint64.
		x = a.FromUint64((3 * a.Low64(n)) ^ 2)
		y, _ := a.Sub(one, a.Mul(n, x))
		for goodBits := 5; goodBits < a.Bits(); goodBits *= 2 {
			t, _ := a.Add(y, one)
			y = a.Mul(y, y)
			x = a.Mul(x, t)
		}
	}
	if contracts.Level >= contracts.Basic {
		contracts.Post(a.Mul(x, n) == one, ErrorPrefix+"InverseModR: wrong result %v for %v", x, n)
	}
	return x
}

// NegativeInverseModR returns the unique x with x * n == -1 mod R, i.e. x*n is the all-ones word. n must be odd.
//
// This is the constant needed for the classical formulation of REDC. See [InverseModR].
func NegativeInverseModR[W comparable, A word.Arith[W]](n W) W {
	var a A
	var zero W
	x, _ := a.Sub(zero, InverseModR[W, A](n))
	if contracts.Level >= contracts.Basic {
		contracts.Post(a.Mul(x, n) == a.Max(), ErrorPrefix+"NegativeInverseModR: wrong result %v for %v", x, n)
	}
	return x
}
