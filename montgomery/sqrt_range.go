package montgomery

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// SqrtRange is the range variant for odd moduli 1 < n < sqrt(R).
//
// Valid values and canonical values are both (0, n]. In particular, the residue 0 is represented by n.
// For valid x, y, the product is x*y <= n^2 < R, so its high word is always zero.
// REDC then simplifies to n - mnHi, which lies in (0, n] without any correction.
//
// The fusing value of x is the representative in [0, n), which is what fused multiply-add expects.
type SqrtRange[W comparable, A word.Arith[W]] struct{}

func (SqrtRange[W, A]) Name() string { return "sqrt" }

func (SqrtRange[W, A]) maxModulus() W {
	var a A
	return a.Rsh(a.Max(), uint(a.Bits()/2))
}

func (SqrtRange[W, A]) isValid(m *monty[W, A], x W) bool {
	var a A
	var zero W
	return x != zero && !a.Less(m.n, x)
}

func (SqrtRange[W, A]) canonical(_ *monty[W, A], x W) W { return x }

func (SqrtRange[W, A]) fusing(m *monty[W, A], x W) W {
	var a A
	var zero W
	return a.Select(x == m.n, zero, x)
}

func (SqrtRange[W, A]) zero(m *monty[W, A]) W { return m.n }

func (p SqrtRange[W, A]) convertIn(m *monty[W, A], x W) W {
	var a A
	var zero W
	x = modular.Reduce[W, A](x, m.n)
	if x == zero {
		return m.n
	}
	_, lo := a.MulWide(x, m.r2ModN) // x, r2ModN < n, so the high word is zero.
	return p.redc(m, zero, lo)
}

// redc ignores hi, which must be zero.
func (SqrtRange[W, A]) redc(m *monty[W, A], hi, lo W) W {
	var a A
	if contracts.Level >= contracts.Basic {
		contracts.Pre(hi == *new(W), ErrorPrefix+"sqrt range REDC: non-zero high word %v", hi)
	}
	t, _ := a.Sub(m.n, m.mulHiInv(lo))
	return t
}

// redcWide uses the standard REDC and maps the result 0 to n.
func (SqrtRange[W, A]) redcWide(m *monty[W, A], hi, lo W) W {
	var a A
	var zero W
	t := m.redcStandard(hi, lo)
	return a.Select(t == zero, m.n, t)
}

func (SqrtRange[W, A]) add(m *monty[W, A], x, y W) W {
	var a A
	nMinusY, _ := a.Sub(m.n, y)
	sum, _ := a.Add(x, y)
	diff, _ := a.Sub(x, nMinusY)
	return a.Select(a.Less(nMinusY, x), diff, sum)
}

func (SqrtRange[W, A]) sub(m *monty[W, A], x, y W) W {
	var a A
	var zero W
	diff, borrow := a.Sub(x, y)
	yMinusX, _ := a.Sub(y, x)
	wrapped, _ := a.Sub(m.n, yMinusX)
	return a.Select(borrow || diff == zero, wrapped, diff)
}

func (SqrtRange[W, A]) unorderedSub(m *monty[W, A], x, y W) W {
	var a A
	var zero W
	d := modular.AbsDiff[W, A](x, y)
	return a.Select(d == zero, m.n, d)
}
