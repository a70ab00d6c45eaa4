package montgomery

import (
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// FullRange is the range variant that allows any odd modulus 1 < n < R.
// Valid values and canonical values are both [0, n).
type FullRange[W comparable, A word.Arith[W]] struct{}

func (FullRange[W, A]) Name() string { return "full" }

func (FullRange[W, A]) maxModulus() W {
	var a A
	return a.Max()
}

func (FullRange[W, A]) isValid(m *monty[W, A], x W) bool {
	var a A
	return a.Less(x, m.n)
}

func (FullRange[W, A]) canonical(_ *monty[W, A], x W) W { return x }

func (FullRange[W, A]) fusing(_ *monty[W, A], x W) W { return x }

func (FullRange[W, A]) zero(_ *monty[W, A]) (zero W) { return }

func (p FullRange[W, A]) convertIn(m *monty[W, A], x W) W {
	var a A
	hi, lo := a.MulWide(x, m.r2ModN) // hi < n, since r2ModN < n
	return p.redc(m, hi, lo)
}

// For x, y in [0,n), x*y < n*R holds for any n < R.
func (FullRange[W, A]) redc(m *monty[W, A], hi, lo W) W {
	return m.redcStandard(hi, lo)
}

func (FullRange[W, A]) redcWide(m *monty[W, A], hi, lo W) W {
	return m.redcStandard(hi, lo)
}

func (FullRange[W, A]) add(m *monty[W, A], x, y W) W {
	return modular.AddPrereduced[W, A](x, y, m.n)
}

func (FullRange[W, A]) sub(m *monty[W, A], x, y W) W {
	return modular.SubPrereduced[W, A](x, y, m.n)
}

func (FullRange[W, A]) unorderedSub(_ *monty[W, A], x, y W) W {
	return modular.AbsDiff[W, A](x, y)
}
