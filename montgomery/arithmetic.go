package montgomery

import "github.com/GottfriedHerold/montgomery/word"

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// Arithmetic is the method set shared by all [Form]s with range policy P and by [StandardForm] (with P = [StandardMath]).
//
// Code written against Arithmetic can switch between Montgomery arithmetic and plain modular arithmetic,
// e.g. to run the same computation as a reference or with an even modulus.
// See [Form] for the documentation of the individual methods.
type Arithmetic[W comparable, P any] interface {
	Modulus() W
	MaxModulus() W
	RangeName() string
	IsValid(x Value[W, P]) bool

	ConvertIn(x W) Value[W, P]
	ConvertOut(x Value[W, P]) W
	Remainder(x W) W
	Canonical(x Value[W, P]) Canonical[W, P]
	Fusing(x Value[W, P]) Fusing[W, P]

	Unity() Canonical[W, P]
	Zero() Canonical[W, P]
	NegativeOne() Canonical[W, P]

	Select(cond bool, x, y Value[W, P]) Value[W, P]
	Add(x, y Value[W, P]) Value[W, P]
	Subtract(x, y Value[W, P]) Value[W, P]
	UnorderedSubtract(x, y Value[W, P]) Value[W, P]
	Negate(x Value[W, P]) Value[W, P]
	Multiply(x, y Value[W, P]) Value[W, P]
	MultiplyIsZero(x, y Value[W, P]) (product Value[W, P], isZero bool)
	Square(x Value[W, P]) Value[W, P]
	FMAdd(x, y Value[W, P], z Fusing[W, P]) Value[W, P]
	FMSub(x, y Value[W, P], z Fusing[W, P]) Value[W, P]
	FusedSquareAdd(x Value[W, P], z Fusing[W, P]) Value[W, P]
	FusedSquareSub(x Value[W, P], z Fusing[W, P]) Value[W, P]

	Inverse(x Value[W, P]) Canonical[W, P]
	GCDWithModulus(x Value[W, P]) W
	GCDWithModulusFunc(x Value[W, P], gcd func(x, y W) W) W

	Pow(base Value[W, P], exponent W) Value[W, P]
	PowArray(bases []Value[W, P], exponent W) []Value[W, P]
	TwoPow(exponent W) Value[W, P]
}

// Both implementations satisfy Arithmetic.
var (
	_ Arithmetic[uint64, FullRange[uint64, word.Arith64]] = (*Full64)(nil)
	_ Arithmetic[uint64, StandardMath]                    = (*Standard64)(nil)
)
