package modular

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/word"
)

// Pow returns base^exponent mod m, using right-to-left square-and-multiply. base must be reduced modulo m.
//
// We define 0^0 == 1 (mod m). For m == 1, the result is always 0.
func Pow[W comparable, A word.Arith[W]](base, exponent, m W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		checkPrereduced[W, A]("Pow", m, base)
	}
	var zero W
	one := a.FromUint64(1)
	result := one
	if m == one {
		return zero
	}
	for exponent != zero {
		if a.Bit(exponent, 0) == 1 {
			result = MulPrereduced[W, A](result, base, m)
		}
		exponent = a.Rsh(exponent, 1)
		if exponent != zero {
			base = MulPrereduced[W, A](base, base, m)
		}
	}
	return result
}
