package montgomery

import (
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// QuarterRange is the range variant for odd moduli 1 < n < R/4.
//
// Valid values are [0, 2n); canonical values are [0, n).
// For valid x, y we have x*y < 4n^2 < n*R, so products satisfy the precondition of REDC.
// This allows REDC to skip the final conditional subtraction: its output hi + n - mnHi is already in (0, 2n).
// Addition and subtraction work modulo 2n; since 4n < R, nothing overflows.
type QuarterRange[W comparable, A word.Arith[W]] struct{}

func (QuarterRange[W, A]) Name() string { return "quarter" }

func (QuarterRange[W, A]) maxModulus() W {
	var a A
	return a.Rsh(a.Max(), 2)
}

func twiceModulus[W comparable, A word.Arith[W]](m *monty[W, A]) W {
	var a A
	return a.Lsh(m.n, 1)
}

func (QuarterRange[W, A]) isValid(m *monty[W, A], x W) bool {
	var a A
	return a.Less(x, twiceModulus(m))
}

func (QuarterRange[W, A]) canonical(m *monty[W, A], x W) W {
	var a A
	xMinusN, borrow := a.Sub(x, m.n)
	return a.Select(borrow, x, xMinusN)
}

func (p QuarterRange[W, A]) fusing(m *monty[W, A], x W) W {
	return p.canonical(m, x)
}

func (QuarterRange[W, A]) zero(_ *monty[W, A]) (zero W) { return }

func (p QuarterRange[W, A]) convertIn(m *monty[W, A], x W) W {
	var a A
	hi, lo := a.MulWide(x, m.r2ModN)
	return p.redc(m, hi, lo)
}

// redc outputs a value in (0, 2n). Requires hi < n.
func (QuarterRange[W, A]) redc(m *monty[W, A], hi, lo W) W {
	var a A
	t, _ := a.Add(hi, m.n)
	t, _ = a.Sub(t, m.mulHiInv(lo))
	return t
}

func (p QuarterRange[W, A]) redcWide(m *monty[W, A], hi, lo W) W {
	return p.redc(m, hi, lo)
}

func (QuarterRange[W, A]) add(m *monty[W, A], x, y W) W {
	var a A
	sum, _ := a.Add(x, y) // < 4n < R
	sumMinus2N, borrow := a.Sub(sum, twiceModulus(m))
	return a.Select(borrow, sum, sumMinus2N)
}

func (QuarterRange[W, A]) sub(m *monty[W, A], x, y W) W {
	var a A
	diff, borrow := a.Sub(x, y)
	wrapped, _ := a.Add(diff, twiceModulus(m))
	return a.Select(borrow, wrapped, diff)
}

func (QuarterRange[W, A]) unorderedSub(_ *monty[W, A], x, y W) W {
	return modular.AbsDiff[W, A](x, y)
}
