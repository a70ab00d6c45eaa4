// Package modular contains plain (non-Montgomery) modular arithmetic on fixed-width words.
//
// All functions are generic over a raw word type W and an arithmetic dictionary A (see package word).
// Unless stated otherwise, inputs must be prereduced, i.e. 0 <= a, b < m, and the modulus m must be > 0.
// The outputs are then prereduced as well. None of the functions here can overflow, regardless of how close m is to R.
//
// The Montgomery package uses these as building blocks; they also serve as (slow) reference implementations in tests.
package modular

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/word"
)

// ErrorPrefix is the prefix used by all panic messages originating from this package.
const ErrorPrefix = "montgomery / modular: "

func checkPrereduced[W comparable, A word.Arith[W]](fun string, m W, inputs ...W) {
	var a A
	for _, x := range inputs {
		contracts.Pre(a.Less(x, m), ErrorPrefix+"%v: input %v not reduced modulo %v", fun, x, m)
	}
}

// AddPrereduced returns (x + y) mod m.
func AddPrereduced[W comparable, A word.Arith[W]](x, y, m W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		checkPrereduced[W, A]("AddPrereduced", m, x, y)
	}
	// x + y >= m iff x >= m - y. In that case, the result is x - (m-y), else x + y (which cannot overflow)
	// Both candidates are computed unconditionally, so the selection only depends on the borrow.
	tmp, _ := a.Sub(m, y)
	diff, borrow := a.Sub(x, tmp)
	sum, _ := a.Add(x, y)
	return a.Select(borrow, sum, diff)
}

// SubPrereduced returns (x - y) mod m.
func SubPrereduced[W comparable, A word.Arith[W]](x, y, m W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		checkPrereduced[W, A]("SubPrereduced", m, x, y)
	}
	diff, borrow := a.Sub(x, y)
	wrapped, _ := a.Add(diff, m) // on borrow, diff == x - y + R, so this gives x - y + m, wrapping modulo R
	return a.Select(borrow, wrapped, diff)
}

// AbsDiff returns |x - y|. There is no modulus involved; if x and y are reduced modulo some m, so is the output.
func AbsDiff[W comparable, A word.Arith[W]](x, y W) W {
	var a A
	d1, borrow := a.Sub(x, y)
	d2, _ := a.Sub(y, x)
	return a.Select(borrow, d2, d1)
}

// MulPrereduced returns (x * y) mod m.
//
// This requires a double-width division and is accordingly slow. Its main use is to set up Montgomery constants.
func MulPrereduced[W comparable, A word.Arith[W]](x, y, m W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		checkPrereduced[W, A]("MulPrereduced", m, x, y)
	}
	hi, lo := a.MulWide(x, y)
	// x, y < m imply x*y < m*R, so hi < m as required by DivWide.
	_, r := a.DivWide(hi, lo, m)
	return r
}

// Reduce returns x mod m for arbitrary x. m must be non-zero.
func Reduce[W comparable, A word.Arith[W]](x, m W) W {
	var a A
	_, r := a.DivMod(x, m)
	return r
}
