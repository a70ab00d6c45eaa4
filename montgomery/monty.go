package montgomery

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/word"
)

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// This file contains the modulus context shared by all range variants and the REDC kernels.
//
// Recall that for a double-width u = hi*R + lo, REDC computes some t == u * R^{-1} mod n without any division.
// We use the "positive inverse" formulation: Let inv be such that n * inv == 1 mod R. Set m := lo * inv mod R.
// Then m*n == lo mod R, so the low half of m*n is exactly lo and u - m*n is divisible by R.
// Writing m*n == mnHi*R + lo, we get
//
//	(u - m*n) / R == hi - mnHi == u * R^{-1} mod n.
//
// Since m < R, we have mnHi < n. If hi < n (the precondition of REDC, equivalent to u < n*R), then hi - mnHi is in (-n, n).
// Notably, we never need to compute the low half of m*n and there is no carry from the low half to track.
// This is what makes this formulation preferable to the classical one with n * negInv == -1 mod R;
// the latter is provided as redcNegative for reference.

// monty holds a modulus and the constants derived from it. It is immutable after creation.
type monty[W comparable, A word.Arith[W]] struct {
	n      W // the modulus; odd, > 1
	inv    W // n * inv == 1 mod R
	rModN  W // R mod n, i.e. the Montgomery representation of 1
	r2ModN W // R^2 mod n, used to convert into Montgomery form
}

// newMonty creates a new modulus context. The caller is responsible for checking that n is odd and > 1.
func newMonty[W comparable, A word.Arith[W]](n W) (m monty[W, A]) {
	var a A
	var zero W
	m.n = n
	m.inv = modular.InverseModR[W, A](n)
	// R mod n == (R - n) mod n and R - n is representable.
	rMinusN, _ := a.Sub(zero, n)
	m.rModN = modular.Reduce[W, A](rMinusN, n)
	m.r2ModN = modular.MulPrereduced[W, A](m.rModN, m.rModN, n)
	return
}

// mulHiInv computes the high half of (lo * inv mod R) * n. This is the common part of all REDC variants.
func (m *monty[W, A]) mulHiInv(lo W) W {
	var a A
	mm := a.Mul(lo, m.inv)
	mnHi, _ := a.MulWide(mm, m.n)
	return mnHi
}

// redcIncomplete computes hi - mnHi (see above), i.e. t with t == (hi*R + lo) * R^{-1} mod n,
// where the true value is t - R if borrow is set and t otherwise. Requires hi < n.
func (m *monty[W, A]) redcIncomplete(hi, lo W) (t W, borrow bool) {
	var a A
	if contracts.Level >= contracts.Basic {
		contracts.Pre(a.Less(hi, m.n), ErrorPrefix+"REDC: high word %v not smaller than modulus %v", hi, m.n)
	}
	return a.Sub(hi, m.mulHiInv(lo))
}

// redcStandard returns the unique t in [0, n) with t == (hi*R + lo) * R^{-1} mod n. Requires hi < n.
func (m *monty[W, A]) redcStandard(hi, lo W) W {
	var a A
	t, borrow := m.redcIncomplete(hi, lo)
	tPlusN, _ := a.Add(t, m.n)
	t = a.Select(borrow, tPlusN, t)
	if contracts.Level >= contracts.Full {
		m.verifyRedc(hi, lo, t)
	}
	return t
}

// redcNegative is the classical formulation of REDC with negInv * n == -1 mod R. The output is in [0, n).
// Requires hi < n.
//
// Here, m*n + u is divisible by R. The low half of m*n + u is zero and produces a carry iff lo != 0.
// The high half hi + mnHi + carry is bounded by 2n-1, which may overflow R if n > R/2. So we need to track that.
func (m *monty[W, A]) redcNegative(hi, lo, negInv W) W {
	var a A
	var zero W
	if contracts.Level >= contracts.Basic {
		contracts.Pre(a.Less(hi, m.n), ErrorPrefix+"REDC: high word %v not smaller than modulus %v", hi, m.n)
	}
	mm := a.Mul(lo, negInv)
	mnHi, mnLo := a.MulWide(mm, m.n)
	_, carryLo := a.Add(lo, mnLo)
	t, carry1 := a.Add(hi, mnHi)
	t, carry2 := a.Add(t, a.Select(carryLo, a.FromUint64(1), zero))
	tMinusN, borrow := a.Sub(t, m.n)
	t = a.Select(carry1 || carry2 || !borrow, tMinusN, t)
	if contracts.Level >= contracts.Full {
		m.verifyRedc(hi, lo, t)
	}
	return t
}

// verifyRedc checks t * R == hi * R + lo mod n by a slow computation. Only used for contract checks.
func (m *monty[W, A]) verifyRedc(hi, lo, t W) {
	var a A
	_, u := a.DivWide(hi, lo, m.n)
	tR := modular.MulPrereduced[W, A](modular.Reduce[W, A](t, m.n), m.rModN, m.n)
	contracts.Post(u == tR, ErrorPrefix+"REDC(%v, %v) returned wrong value %v for modulus %v", hi, lo, t, m.n)
}
