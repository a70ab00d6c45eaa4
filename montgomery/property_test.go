package montgomery

import (
	"testing"

	"github.com/GottfriedHerold/montgomery/word"
	"pgregory.net/rapid"
)

// Property-based tests of the ring laws. We do not compare against a reference implementation here.

// drawForm64 draws a modulus valid for the range policy P and returns the corresponding Form.
func drawForm64[P RangePolicy[uint64, word.Arith64]](t *rapid.T) *Form[uint64, word.Arith64, P] {
	var p P
	n := rapid.Uint64Range(1, (p.maxModulus()-1)/2).Draw(t, "halfModulus")*2 + 1
	return MustNew[uint64, word.Arith64, P](n)
}

func drawValue64[P RangePolicy[uint64, word.Arith64]](t *rapid.T, f *Form[uint64, word.Arith64, P], label string) Value[uint64, P] {
	return f.ConvertIn(rapid.Uint64().Draw(t, label))
}

func TestRingLaws(t *testing.T) {
	t.Run("Full64", testRingLaws[FullRange[uint64, word.Arith64]])
	t.Run("Half64", testRingLaws[HalfRange[uint64, word.Arith64]])
	t.Run("Quarter64", testRingLaws[QuarterRange[uint64, word.Arith64]])
	t.Run("Sqrt64", testRingLaws[SqrtRange[uint64, word.Arith64]])
}

func testRingLaws[P RangePolicy[uint64, word.Arith64]](t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawForm64[P](t)
		x := drawValue64(t, f, "x")
		y := drawValue64(t, f, "y")
		z := drawValue64(t, f, "z")
		eq := func(u, v Value[uint64, P]) bool { return f.Canonical(u) == f.Canonical(v) }

		if !eq(f.Multiply(x, y), f.Multiply(y, x)) {
			t.Fatalf("multiplication not commutative")
		}
		if !eq(f.Multiply(f.Multiply(x, y), z), f.Multiply(x, f.Multiply(y, z))) {
			t.Fatalf("multiplication not associative")
		}
		if !eq(f.Multiply(x, f.Add(y, z)), f.Add(f.Multiply(x, y), f.Multiply(x, z))) {
			t.Fatalf("distributive law fails")
		}
		if !eq(f.Add(f.Subtract(x, y), y), x) {
			t.Fatalf("x - y + y != x")
		}
		if !eq(f.Add(x, f.Negate(x)), f.Zero().Value()) {
			t.Fatalf("x + (-x) != 0")
		}
		if !eq(f.Multiply(x, f.Unity().Value()), x) {
			t.Fatalf("x * 1 != x")
		}
		if !eq(f.Multiply(x, f.NegativeOne().Value()), f.Negate(x)) {
			t.Fatalf("x * (-1) != -x")
		}
		if !eq(f.FMAdd(x, y, f.Fusing(z)), f.Add(f.Multiply(x, y), z)) {
			t.Fatalf("FMAdd inconsistent")
		}
		if !eq(f.FMSub(x, y, f.Fusing(z)), f.Subtract(f.Multiply(x, y), z)) {
			t.Fatalf("FMSub inconsistent")
		}
		if inv := f.Inverse(x); inv != f.Zero() {
			if !eq(f.Multiply(x, inv.Value()), f.Unity().Value()) {
				t.Fatalf("x * x^{-1} != 1")
			}
		}
		d := f.UnorderedSubtract(x, y)
		if !eq(d, f.Subtract(x, y)) && !eq(d, f.Subtract(y, x)) {
			t.Fatalf("UnorderedSubtract is neither x - y nor y - x")
		}

		e1 := rapid.Uint64Range(0, 1<<20).Draw(t, "e1")
		e2 := rapid.Uint64Range(0, 1<<20).Draw(t, "e2")
		if !eq(f.Pow(x, e1+e2), f.Multiply(f.Pow(x, e1), f.Pow(x, e2))) {
			t.Fatalf("x^(e1+e2) != x^e1 * x^e2")
		}
		if !eq(f.TwoPow(e1+e2), f.Multiply(f.TwoPow(e1), f.TwoPow(e2))) {
			t.Fatalf("2^(e1+e2) != 2^e1 * 2^e2")
		}
		if !eq(f.TwoPow(e1), f.Pow(f.ConvertIn(2), e1)) {
			t.Fatalf("TwoPow differs from Pow")
		}
	})
}

func TestConvertRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := drawForm64[FullRange[uint64, word.Arith64]](t)
		x := rapid.Uint64().Draw(t, "x")
		if got := f.ConvertOut(f.ConvertIn(x)); got != x%f.Modulus() {
			t.Fatalf("round trip of %v gave %v for modulus %v", x, got, f.Modulus())
		}
		if got := f.Remainder(x); got != x%f.Modulus() {
			t.Fatalf("Remainder(%v) gave %v for modulus %v", x, got, f.Modulus())
		}
	})
}
