package montgomery

import (
	"testing"

	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/GottfriedHerold/montgomery/internal/testutils"
	"github.com/GottfriedHerold/montgomery/word"
)

// These tests only do something if built with tags=contracts or tags=contracts_full.

func TestContractViolations(t *testing.T) {
	if contracts.Level < contracts.Basic {
		t.Skip("contract checks disabled")
	}
	full, _ := NewFull8(97)
	invalid := Value[uint8, FullRange[uint8, word.Arith8]]{200}
	valid := full.ConvertIn(5)

	for name, fun := range map[string]func(){
		"Multiply":          func() { full.Multiply(invalid, valid) },
		"Add":               func() { full.Add(valid, invalid) },
		"Subtract":          func() { full.Subtract(invalid, valid) },
		"UnorderedSubtract": func() { full.UnorderedSubtract(invalid, valid) },
		"ConvertOut":        func() { full.ConvertOut(invalid) },
		"Canonical":         func() { full.Canonical(invalid) },
		"Inverse":           func() { full.Inverse(invalid) },
		"Pow":               func() { full.Pow(invalid, 3) },
		"FMAdd":             func() { full.FMAdd(valid, valid, Fusing[uint8, FullRange[uint8, word.Arith8]]{98}) },
	} {
		testutils.FatalUnless(t, testutils.CheckContractViolation(fun), "%v did not detect invalid input", name)
	}
	testutils.FatalUnless(t, !testutils.CheckContractViolation(func() { full.Multiply(valid, valid) }), "valid input rejected")

	sqrt, _ := NewSqrt16(251)
	testutils.FatalUnless(t, testutils.CheckContractViolation(func() { sqrt.ConvertOut(Value[uint16, SqrtRange[uint16, word.Arith16]]{0}) }),
		"raw value 0 accepted for sqrt range")
	var p SqrtRange[uint16, word.Arith16]
	testutils.FatalUnless(t, testutils.CheckContractViolation(func() { p.redc(&sqrt.m, 1, 0) }), "sqrt range REDC accepted non-zero high word")

	m := newMonty[uint32, word.Arith32](101)
	testutils.FatalUnless(t, testutils.CheckContractViolation(func() { m.redcStandard(101, 0) }), "REDC accepted high word >= n")

	standard, _ := NewStandard8(97)
	invalidStandard := Value[uint8, StandardMath]{97}
	for name, fun := range map[string]func(){
		"ConvertOut":        func() { standard.ConvertOut(invalidStandard) },
		"Inverse":           func() { standard.Inverse(invalidStandard) },
		"UnorderedSubtract": func() { standard.UnorderedSubtract(invalidStandard, standard.Unity().Value()) },
	} {
		testutils.FatalUnless(t, testutils.CheckContractViolation(fun), "StandardForm.%v did not detect invalid input", name)
	}
}

func TestSmallTwoPowInvariant(t *testing.T) {
	if contracts.Level < contracts.Basic {
		t.Skip("contract checks disabled")
	}
	f, _ := NewFull8(97)
	corrupted := *f
	corrupted.m.r2ModN = 0xff // not reduced modulo n
	didPanic, panicValue := testutils.CheckPanic(func() { corrupted.smallTwoPow(7) })
	testutils.FatalUnless(t, didPanic, "corrupted constant not detected")
	violation, ok := panicValue.(contracts.Violation)
	testutils.FatalUnless(t, ok, "unexpected panic value %v", panicValue)
	testutils.FatalUnless(t, violation.Kind == contracts.Invariant, "wrong violation kind %v", violation.Kind)

	testutils.FatalUnless(t, !testutils.CheckContractViolation(func() { f.smallTwoPow(7) }), "smallTwoPow rejected valid constants")
}
