// Package montgomery implements arithmetic modulo a fixed odd modulus n in Montgomery form.
//
// A residue a modulo n is represented by (some representative of) a*R mod n, where R = 2^Bits is the radix of the
// underlying word type. Multiplication of representations then needs a reduction of a double-width product by R rather
// than by n, which is done by the REDC algorithm using only multiplications and no divisions.
//
// The central type is [Form]: it holds a modulus and the precomputed constants derived from it and offers all
// arithmetic operations. A Form is immutable after creation and may be used concurrently.
// Form is generic over
//   - the raw word type W (uint8, uint16, uint32, uint64 or [word.Uint128]),
//   - an arithmetic dictionary A for W (see package word), and
//   - a range policy P, one of [FullRange], [HalfRange], [QuarterRange], [SqrtRange].
//
// The range policies trade a smaller maximal modulus for cheaper operations; see their documentation.
// For convenience, aliases such as [Full64] or [Quarter128] and matching constructors such as [NewFull64] are provided.
// [Default8] to [Default128] pick the fastest variant that admits every odd modulus of the given size.
//
// [StandardForm] offers the same API (see [Arithmetic]) using plain modular arithmetic. It is slower, but accepts even moduli.
//
// Values of a Form have type [Value], [Canonical] or [Fusing]. Values carry the range policy in their type,
// so values from Forms of different variants cannot be mixed up. Mixing values of different Forms of the same type
// (i.e. with different moduli) is a programming error that is not detected.
//
// Functions in this package do not check their documented preconditions (such as values being valid for the Form),
// unless built with tags=contracts or tags=contracts_full. Violating those results in garbage output.
package montgomery

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
	"github.com/pkg/errors"
)

// Value is a residue modulo n in Montgomery form, as used by a [Form] with range policy P.
//
// The raw representation need not be unique; see the range policies for the set of valid raw values.
// The zero value of Value is only valid for Forms where 0 is a valid raw value (i.e. all but SqrtRange).
type Value[W comparable, P any] struct {
	raw W
}

// Canonical is a Value that is guaranteed to be the unique canonical representative of its residue.
//
// Unlike for [Value], comparing Canonicals with == compares the residues.
type Canonical[W comparable, P any] struct {
	raw W
}

// Fusing is the form of a value that [Form.FMAdd] and [Form.FMSub] expect for their additive argument.
type Fusing[W comparable, P any] struct {
	raw W
}

// Raw returns the internal representation of x. This is some representative of a*R mod n, where a is the residue of x.
func (x Value[W, P]) Raw() W {
	return x.raw
}

// Value converts c to a Value.
func (c Canonical[W, P]) Value() Value[W, P] {
	return Value[W, P](c)
}

// Form is a modulus in Montgomery form, together with all arithmetic operations on residues modulo that modulus.
// Create Forms with [New] or one of the width-specific constructors, such as [NewFull64].
type Form[W comparable, A word.Arith[W], P RangePolicy[W, A]] struct {
	m monty[W, A]
}

// New creates a Form for the modulus n. n must be odd, > 1 and not exceed the bound of the range policy P.
// Otherwise, an error wrapping ErrModulusTooSmall, ErrEvenModulus or ErrModulusTooLarge is returned.
func New[W comparable, A word.Arith[W], P RangePolicy[W, A]](n W) (*Form[W, A, P], error) {
	var a A
	var p P
	if !a.Less(a.FromUint64(1), n) {
		return nil, errors.Wrapf(ErrModulusTooSmall, "modulus %v", n)
	}
	if !word.IsOdd[W, A](n) {
		return nil, errors.Wrapf(ErrEvenModulus, "modulus %v", n)
	}
	if a.Less(p.maxModulus(), n) {
		return nil, errors.Wrapf(ErrModulusTooLarge, "modulus %v exceeds %v for %d-bit %s range", n, p.maxModulus(), a.Bits(), p.Name())
	}
	return &Form[W, A, P]{m: newMonty[W, A](n)}, nil
}

// MustNew is like [New], but panics on error.
func MustNew[W comparable, A word.Arith[W], P RangePolicy[W, A]](n W) *Form[W, A, P] {
	f, err := New[W, A, P](n)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns the modulus n.
func (f *Form[W, A, P]) Modulus() W {
	return f.m.n
}

// MaxModulus returns the largest modulus allowed for the range policy and word size of f.
func (f *Form[W, A, P]) MaxModulus() W {
	var p P
	return p.maxModulus()
}

// RangeName returns the name of f's range variant.
func (f *Form[W, A, P]) RangeName() string {
	var p P
	return p.Name()
}

// IsValid checks whether x is a valid value for f. This is meant for debugging and tests;
// values obtained from f's methods are always valid (provided all inputs were).
func (f *Form[W, A, P]) IsValid(x Value[W, P]) bool {
	var p P
	return p.isValid(&f.m, x.raw)
}

func (f *Form[W, A, P]) checkValid(fun string, xs ...Value[W, P]) {
	var p P
	for _, x := range xs {
		contracts.Pre(p.isValid(&f.m, x.raw), ErrorPrefix+"%v: raw value %v is not valid for %s range modulus %v", fun, x.raw, p.Name(), f.m.n)
	}
}

func (f *Form[W, A, P]) checkResult(fun string, x Value[W, P]) {
	var p P
	contracts.Post(p.isValid(&f.m, x.raw), ErrorPrefix+"%v: produced invalid raw value %v for %s range modulus %v", fun, x.raw, p.Name(), f.m.n)
}

// ConvertIn returns the Montgomery form of x. x need not be reduced modulo n.
func (f *Form[W, A, P]) ConvertIn(x W) Value[W, P] {
	var p P
	ret := Value[W, P]{p.convertIn(&f.m, x)}
	if contracts.Level >= contracts.Basic {
		f.checkResult("ConvertIn", ret)
	}
	return ret
}

// ConvertOut returns the residue represented by x as an integer in [0, n).
func (f *Form[W, A, P]) ConvertOut(x Value[W, P]) W {
	var zero W
	if contracts.Level >= contracts.Basic {
		f.checkValid("ConvertOut", x)
	}
	// Every valid raw value x is < R, so hi == 0 satisfies REDC's precondition.
	return f.m.redcStandard(zero, x.raw)
}

// Remainder returns x mod n. This does not involve Montgomery form at all.
func (f *Form[W, A, P]) Remainder(x W) W {
	return modular.Reduce[W, A](x, f.m.n)
}

// Canonical returns the canonical representative of x.
func (f *Form[W, A, P]) Canonical(x Value[W, P]) Canonical[W, P] {
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("Canonical", x)
	}
	return Canonical[W, P]{p.canonical(&f.m, x.raw)}
}

// Fusing returns x in the form needed as the additive input to [Form.FMAdd] and [Form.FMSub].
func (f *Form[W, A, P]) Fusing(x Value[W, P]) Fusing[W, P] {
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("Fusing", x)
	}
	return Fusing[W, P]{p.fusing(&f.m, x.raw)}
}

// Unity returns the Montgomery form of 1.
func (f *Form[W, A, P]) Unity() Canonical[W, P] {
	return Canonical[W, P]{f.m.rModN}
}

// Zero returns the Montgomery form of 0.
func (f *Form[W, A, P]) Zero() Canonical[W, P] {
	var p P
	return Canonical[W, P]{p.zero(&f.m)}
}

// NegativeOne returns the Montgomery form of -1.
func (f *Form[W, A, P]) NegativeOne() Canonical[W, P] {
	var a A
	// rModN is in (0, n), because n is odd and > 1; so is n - rModN.
	negOne, _ := a.Sub(f.m.n, f.m.rModN)
	return Canonical[W, P]{negOne}
}

// Select returns x if cond holds and y otherwise. The selection is written to allow a conditional move.
func (f *Form[W, A, P]) Select(cond bool, x, y Value[W, P]) Value[W, P] {
	var a A
	return Value[W, P]{a.Select(cond, x.raw, y.raw)}
}

// Add returns x + y.
func (f *Form[W, A, P]) Add(x, y Value[W, P]) Value[W, P] {
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("Add", x, y)
	}
	ret := Value[W, P]{p.add(&f.m, x.raw, y.raw)}
	if contracts.Level >= contracts.Basic {
		f.checkResult("Add", ret)
	}
	return ret
}

// Subtract returns x - y.
func (f *Form[W, A, P]) Subtract(x, y Value[W, P]) Value[W, P] {
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("Subtract", x, y)
	}
	ret := Value[W, P]{p.sub(&f.m, x.raw, y.raw)}
	if contracts.Level >= contracts.Basic {
		f.checkResult("Subtract", ret)
	}
	return ret
}

// UnorderedSubtract returns either x - y or y - x, without specifying which.
// This is cheaper than [Form.Subtract] and sufficient whenever the sign does not matter,
// e.g. when testing the result for zero or taking a gcd with the modulus.
func (f *Form[W, A, P]) UnorderedSubtract(x, y Value[W, P]) Value[W, P] {
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("UnorderedSubtract", x, y)
	}
	ret := Value[W, P]{p.unorderedSub(&f.m, x.raw, y.raw)}
	if contracts.Level >= contracts.Basic {
		f.checkResult("UnorderedSubtract", ret)
	}
	return ret
}

// Negate returns -x.
func (f *Form[W, A, P]) Negate(x Value[W, P]) Value[W, P] {
	var p P
	return f.Subtract(Value[W, P]{p.zero(&f.m)}, x)
}

// Multiply returns x * y.
func (f *Form[W, A, P]) Multiply(x, y Value[W, P]) Value[W, P] {
	var a A
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid("Multiply", x, y)
	}
	hi, lo := a.MulWide(x.raw, y.raw)
	ret := Value[W, P]{p.redc(&f.m, hi, lo)}
	if contracts.Level >= contracts.Basic {
		f.checkResult("Multiply", ret)
	}
	if contracts.Level >= contracts.Full {
		expected := modular.MulPrereduced[W, A](f.ConvertOut(x), f.ConvertOut(y), f.m.n)
		contracts.Post(f.ConvertOut(ret) == expected, ErrorPrefix+"Multiply: wrong result for modulus %v", f.m.n)
	}
	return ret
}

// MultiplyIsZero returns x * y and whether this product is zero modulo n.
func (f *Form[W, A, P]) MultiplyIsZero(x, y Value[W, P]) (product Value[W, P], isZero bool) {
	var p P
	product = f.Multiply(x, y)
	isZero = p.canonical(&f.m, product.raw) == p.zero(&f.m)
	return
}

// Square returns x * x.
func (f *Form[W, A, P]) Square(x Value[W, P]) Value[W, P] {
	return f.Multiply(x, x)
}

// fusedMultiply computes REDC(x*y + z*R) if add holds and REDC(x*y - z*R) otherwise.
//
// The modular addition of z is done on the high word of the product, i.e. before REDC and not after it.
// We have REDC(u) + z == (u + z*R) * R^{-1} mod n. Setting vHi := (uHi + z) mod n, vHi*R + uLo is congruent to u + z*R and
// satisfies REDC's precondition vHi < n. Note that vHi only depends on the product's high word and z, not on the
// multiplications inside REDC, so both can execute in parallel.
func (f *Form[W, A, P]) fusedMultiply(fun string, x, y Value[W, P], z Fusing[W, P], add bool) Value[W, P] {
	var a A
	var p P
	if contracts.Level >= contracts.Basic {
		f.checkValid(fun, x, y)
		contracts.Pre(a.Less(z.raw, f.m.n), ErrorPrefix+"%v: fusing value %v not reduced modulo %v", fun, z.raw, f.m.n)
	}
	hi, lo := a.MulWide(x.raw, y.raw)
	if add {
		hi = modular.AddPrereduced[W, A](hi, z.raw, f.m.n)
	} else {
		hi = modular.SubPrereduced[W, A](hi, z.raw, f.m.n)
	}
	ret := Value[W, P]{p.redcWide(&f.m, hi, lo)}
	if contracts.Level >= contracts.Basic {
		f.checkResult(fun, ret)
	}
	return ret
}

// FMAdd returns x * y + z.
func (f *Form[W, A, P]) FMAdd(x, y Value[W, P], z Fusing[W, P]) Value[W, P] {
	return f.fusedMultiply("FMAdd", x, y, z, true)
}

// FMSub returns x * y - z.
func (f *Form[W, A, P]) FMSub(x, y Value[W, P], z Fusing[W, P]) Value[W, P] {
	return f.fusedMultiply("FMSub", x, y, z, false)
}

// FusedSquareAdd returns x * x + z.
func (f *Form[W, A, P]) FusedSquareAdd(x Value[W, P], z Fusing[W, P]) Value[W, P] {
	return f.fusedMultiply("FusedSquareAdd", x, x, z, true)
}

// FusedSquareSub returns x * x - z.
func (f *Form[W, A, P]) FusedSquareSub(x Value[W, P], z Fusing[W, P]) Value[W, P] {
	return f.fusedMultiply("FusedSquareSub", x, x, z, false)
}

// Inverse returns the multiplicative inverse of x. If x has no inverse (i.e. gcd(x, n) != 1), it returns [Form.Zero].
//
// Since x represents a as a*R, two REDC steps give a*R^{-1}, whose inverse modulo n is a^{-1}*R, the Montgomery form of a^{-1}.
func (f *Form[W, A, P]) Inverse(x Value[W, P]) Canonical[W, P] {
	var a A
	var p P
	var zero W
	if contracts.Level >= contracts.Basic {
		f.checkValid("Inverse", x)
	}
	t := f.m.redcStandard(zero, x.raw)
	t = f.m.redcStandard(zero, t)
	inv := modular.MultiplicativeInverse[W, A](t, f.m.n)
	return Canonical[W, P]{a.Select(inv == zero, p.zero(&f.m), inv)}
}

// GCDWithModulus returns gcd(a, n), where a in [0, n) is the residue represented by x.
//
// As n is coprime to R, this equals the gcd of the raw value and n, so no conversion out of Montgomery form is needed.
func (f *Form[W, A, P]) GCDWithModulus(x Value[W, P]) W {
	return f.GCDWithModulusFunc(x, modular.GCD[W, A])
}

// GCDWithModulusFunc is like [Form.GCDWithModulus], but uses the given gcd function.
// gcd is called with the raw value of x and n; note that the raw value need not be smaller than n.
func (f *Form[W, A, P]) GCDWithModulusFunc(x Value[W, P], gcd func(x, y W) W) W {
	if contracts.Level >= contracts.Basic {
		f.checkValid("GCDWithModulus", x)
	}
	return gcd(x.raw, f.m.n)
}
