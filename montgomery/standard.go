package montgomery

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
	"github.com/pkg/errors"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// This file defines StandardForm, which offers the API of Form on top of plain modular arithmetic from package modular.

// StandardMath is the type parameter of the values of a [StandardForm]. It is only used as a marker.
type StandardMath struct{}

// StandardForm has the same methods as [Form], but does not use Montgomery form: the raw value of a residue a is a itself.
//
// Valid values are [0, n), and every value is canonical. Unlike Forms, StandardForm allows even moduli.
// Multiplication needs a double-width division, so this is much slower than any Form; it is meant as a reference
// and as a drop-in replacement whenever the modulus is not known to be odd.
type StandardForm[W comparable, A word.Arith[W]] struct {
	n W
}

// NewStandard creates a StandardForm for the modulus n > 1. Otherwise, an error wrapping ErrModulusTooSmall is returned.
func NewStandard[W comparable, A word.Arith[W]](n W) (*StandardForm[W, A], error) {
	var a A
	if !a.Less(a.FromUint64(1), n) {
		return nil, errors.Wrapf(ErrModulusTooSmall, "modulus %v", n)
	}
	return &StandardForm[W, A]{n: n}, nil
}

// Modulus returns the modulus n.
func (f *StandardForm[W, A]) Modulus() W {
	return f.n
}

// MaxModulus returns R-1.
func (f *StandardForm[W, A]) MaxModulus() W {
	var a A
	return a.Max()
}

// RangeName returns "standard".
func (f *StandardForm[W, A]) RangeName() string {
	return "standard"
}

// IsValid checks whether x is reduced modulo n.
func (f *StandardForm[W, A]) IsValid(x Value[W, StandardMath]) bool {
	var a A
	return a.Less(x.raw, f.n)
}

func (f *StandardForm[W, A]) checkValid(fun string, xs ...Value[W, StandardMath]) {
	for _, x := range xs {
		contracts.Pre(f.IsValid(x), ErrorPrefix+"%v: value %v is not reduced modulo %v", fun, x.raw, f.n)
	}
}

// ConvertIn returns x mod n as a Value.
func (f *StandardForm[W, A]) ConvertIn(x W) Value[W, StandardMath] {
	return Value[W, StandardMath]{modular.Reduce[W, A](x, f.n)}
}

// ConvertOut returns the residue x in [0, n).
func (f *StandardForm[W, A]) ConvertOut(x Value[W, StandardMath]) W {
	if contracts.Level >= contracts.Basic {
		f.checkValid("ConvertOut", x)
	}
	return x.raw
}

// Remainder returns x mod n.
func (f *StandardForm[W, A]) Remainder(x W) W {
	return modular.Reduce[W, A](x, f.n)
}

// Canonical returns x; all valid values are canonical.
func (f *StandardForm[W, A]) Canonical(x Value[W, StandardMath]) Canonical[W, StandardMath] {
	if contracts.Level >= contracts.Basic {
		f.checkValid("Canonical", x)
	}
	return Canonical[W, StandardMath](x)
}

// Fusing returns x as the additive input to [StandardForm.FMAdd] and [StandardForm.FMSub].
func (f *StandardForm[W, A]) Fusing(x Value[W, StandardMath]) Fusing[W, StandardMath] {
	if contracts.Level >= contracts.Basic {
		f.checkValid("Fusing", x)
	}
	return Fusing[W, StandardMath](x)
}

// Unity returns 1.
func (f *StandardForm[W, A]) Unity() Canonical[W, StandardMath] {
	return Canonical[W, StandardMath]{word.One[W, A]()}
}

// Zero returns 0.
func (f *StandardForm[W, A]) Zero() (zero Canonical[W, StandardMath]) {
	return
}

// NegativeOne returns n-1.
func (f *StandardForm[W, A]) NegativeOne() Canonical[W, StandardMath] {
	var a A
	negOne, _ := a.Sub(f.n, word.One[W, A]())
	return Canonical[W, StandardMath]{negOne}
}

// Select returns x if cond holds and y otherwise.
func (f *StandardForm[W, A]) Select(cond bool, x, y Value[W, StandardMath]) Value[W, StandardMath] {
	var a A
	return Value[W, StandardMath]{a.Select(cond, x.raw, y.raw)}
}

// Add returns x + y.
func (f *StandardForm[W, A]) Add(x, y Value[W, StandardMath]) Value[W, StandardMath] {
	return Value[W, StandardMath]{modular.AddPrereduced[W, A](x.raw, y.raw, f.n)}
}

// Subtract returns x - y.
func (f *StandardForm[W, A]) Subtract(x, y Value[W, StandardMath]) Value[W, StandardMath] {
	return Value[W, StandardMath]{modular.SubPrereduced[W, A](x.raw, y.raw, f.n)}
}

// UnorderedSubtract returns |x - y|, which is reduced since x and y are.
func (f *StandardForm[W, A]) UnorderedSubtract(x, y Value[W, StandardMath]) Value[W, StandardMath] {
	if contracts.Level >= contracts.Basic {
		f.checkValid("UnorderedSubtract", x, y)
	}
	return Value[W, StandardMath]{modular.AbsDiff[W, A](x.raw, y.raw)}
}

// Negate returns -x.
func (f *StandardForm[W, A]) Negate(x Value[W, StandardMath]) Value[W, StandardMath] {
	var zero W
	return Value[W, StandardMath]{modular.SubPrereduced[W, A](zero, x.raw, f.n)}
}

// Multiply returns x * y.
func (f *StandardForm[W, A]) Multiply(x, y Value[W, StandardMath]) Value[W, StandardMath] {
	return Value[W, StandardMath]{modular.MulPrereduced[W, A](x.raw, y.raw, f.n)}
}

// MultiplyIsZero returns x * y and whether this product is zero modulo n.
func (f *StandardForm[W, A]) MultiplyIsZero(x, y Value[W, StandardMath]) (product Value[W, StandardMath], isZero bool) {
	var zero W
	product = f.Multiply(x, y)
	return product, product.raw == zero
}

// Square returns x * x.
func (f *StandardForm[W, A]) Square(x Value[W, StandardMath]) Value[W, StandardMath] {
	return f.Multiply(x, x)
}

// FMAdd returns x * y + z.
func (f *StandardForm[W, A]) FMAdd(x, y Value[W, StandardMath], z Fusing[W, StandardMath]) Value[W, StandardMath] {
	return f.Add(f.Multiply(x, y), Value[W, StandardMath](z))
}

// FMSub returns x * y - z.
func (f *StandardForm[W, A]) FMSub(x, y Value[W, StandardMath], z Fusing[W, StandardMath]) Value[W, StandardMath] {
	return f.Subtract(f.Multiply(x, y), Value[W, StandardMath](z))
}

// FusedSquareAdd returns x * x + z.
func (f *StandardForm[W, A]) FusedSquareAdd(x Value[W, StandardMath], z Fusing[W, StandardMath]) Value[W, StandardMath] {
	return f.FMAdd(x, x, z)
}

// FusedSquareSub returns x * x - z.
func (f *StandardForm[W, A]) FusedSquareSub(x Value[W, StandardMath], z Fusing[W, StandardMath]) Value[W, StandardMath] {
	return f.FMSub(x, x, z)
}

// Inverse returns the multiplicative inverse of x, or [StandardForm.Zero] if gcd(x, n) != 1.
func (f *StandardForm[W, A]) Inverse(x Value[W, StandardMath]) Canonical[W, StandardMath] {
	if contracts.Level >= contracts.Basic {
		f.checkValid("Inverse", x)
	}
	return Canonical[W, StandardMath]{modular.MultiplicativeInverse[W, A](x.raw, f.n)}
}

// GCDWithModulus returns gcd(x, n).
func (f *StandardForm[W, A]) GCDWithModulus(x Value[W, StandardMath]) W {
	return f.GCDWithModulusFunc(x, modular.GCD[W, A])
}

// GCDWithModulusFunc is like [StandardForm.GCDWithModulus], but uses the given gcd function.
func (f *StandardForm[W, A]) GCDWithModulusFunc(x Value[W, StandardMath], gcd func(x, y W) W) W {
	return gcd(x.raw, f.n)
}

// Pow returns base^exponent, with 0^0 == 1.
func (f *StandardForm[W, A]) Pow(base Value[W, StandardMath], exponent W) Value[W, StandardMath] {
	return Value[W, StandardMath]{modular.Pow[W, A](base.raw, exponent, f.n)}
}

// PowArray returns bases[i]^exponent for each i in a newly allocated slice.
func (f *StandardForm[W, A]) PowArray(bases []Value[W, StandardMath], exponent W) []Value[W, StandardMath] {
	results := make([]Value[W, StandardMath], len(bases))
	for i, base := range bases {
		results[i] = f.Pow(base, exponent)
	}
	return results
}

// TwoPow returns 2^exponent.
func (f *StandardForm[W, A]) TwoPow(exponent W) Value[W, StandardMath] {
	var a A
	return f.Pow(f.ConvertIn(a.FromUint64(2)), exponent)
}
