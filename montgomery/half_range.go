package montgomery

import "github.com/GottfriedHerold/montgomery/word"

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// HalfRange is the range variant for odd moduli 1 < n < R/2.
// Valid values and canonical values are both [0, n), as for [FullRange].
//
// The smaller modulus guarantees that hi + n and x + y never overflow for hi, x, y < n.
// This removes the carry tracking from REDC and from addition.
type HalfRange[W comparable, A word.Arith[W]] struct {
	FullRange[W, A]
}

func (HalfRange[W, A]) Name() string { return "half" }

func (HalfRange[W, A]) maxModulus() W {
	var a A
	return a.Rsh(a.Max(), 1)
}

func (p HalfRange[W, A]) convertIn(m *monty[W, A], x W) W {
	var a A
	hi, lo := a.MulWide(x, m.r2ModN)
	return p.redc(m, hi, lo)
}

// redc computes (hi + n) - mnHi in (0, 2n) and subtracts n if the result is >= n.
// Note that hi + n < 2n < R, so no intermediate result overflows.
func (HalfRange[W, A]) redc(m *monty[W, A], hi, lo W) W {
	var a A
	t, _ := a.Add(hi, m.n)
	t, _ = a.Sub(t, m.mulHiInv(lo))
	tMinusN, borrow := a.Sub(t, m.n)
	return a.Select(borrow, t, tMinusN)
}

func (p HalfRange[W, A]) redcWide(m *monty[W, A], hi, lo W) W {
	return p.redc(m, hi, lo)
}

func (HalfRange[W, A]) add(m *monty[W, A], x, y W) W {
	var a A
	sum, _ := a.Add(x, y) // < 2n < R
	sumMinusN, borrow := a.Sub(sum, m.n)
	return a.Select(borrow, sum, sumMinusN)
}
