package word

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/GottfriedHerold/montgomery/internal/testutils"
)

// This file contains tests for the Arith implementations defined in native.go and uint128_arith.go.
// We test everything against big.Int, which we assume to be correct.

// sampleWords returns some edge cases followed by amount many random words.
func sampleWords[W comparable, A Arith[W]](rng *rand.Rand, amount int) []W {
	var a A
	bitLen := a.Bits()
	R := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	edgeCases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(R, big.NewInt(1)),
		new(big.Int).Sub(R, big.NewInt(2)),
		new(big.Int).Rsh(R, 1),
		new(big.Int).Sub(new(big.Int).Rsh(R, 1), big.NewInt(1)),
	}
	ret := make([]W, 0, len(edgeCases)+amount)
	for _, x := range edgeCases {
		w, ok := a.FromBig(x)
		testutils.Assert(ok)
		ret = append(ret, w)
	}
	for i := 0; i < amount; i++ {
		// Use a random bit length to get a good mix of small and large numbers.
		bound := new(big.Int).Lsh(big.NewInt(1), uint(rng.Intn(bitLen)+1))
		w, ok := a.FromBig(new(big.Int).Rand(rng, bound))
		testutils.Assert(ok)
		ret = append(ret, w)
	}
	return ret
}

func TestNativeArith(t *testing.T) {
	t.Run("uint8", testArith[uint8, Arith8])
	t.Run("uint16", testArith[uint16, Arith16])
	t.Run("uint32", testArith[uint32, Arith32])
	t.Run("uint64", testArith[uint64, Arith64])
	t.Run("Uint128", testArith[Uint128, Arith128])
}

func testArith[W comparable, A Arith[W]](t *testing.T) {
	var a A
	rng := rand.New(rand.NewSource(int64(a.Bits())))
	xs := sampleWords[W, A](rng, 40)
	ys := sampleWords[W, A](rng, 40)
	R := new(big.Int).Lsh(big.NewInt(1), uint(a.Bits()))

	toBig := a.ToBig
	fromBig := func(x *big.Int) W {
		w, ok := a.FromBig(x)
		testutils.FatalUnless(t, ok, "FromBig failed for %v", x)
		return w
	}

	testutils.FatalUnless(t, a.Max() == fromBig(new(big.Int).Sub(R, big.NewInt(1))), "Max is wrong")
	testutils.FatalUnless(t, a.FromUint64(1) == One[W, A](), "One is wrong")
	_, ok := a.FromBig(R)
	testutils.FatalUnless(t, !ok, "FromBig accepted R")
	_, ok = a.FromBig(big.NewInt(-1))
	testutils.FatalUnless(t, !ok, "FromBig accepted -1")

	for _, x := range xs {
		xInt := toBig(x)
		testutils.FatalUnless(t, a.BitLen(x) == xInt.BitLen(), "BitLen wrong for %v", x)
		testutils.FatalUnless(t, a.Low64(x) == new(big.Int).And(xInt, new(big.Int).SetUint64(^uint64(0))).Uint64(), "Low64 wrong for %v", x)
		testutils.FatalUnless(t, IsOdd[W, A](x) == (xInt.Bit(0) == 1), "IsOdd wrong for %v", x)
		for i := 0; i < a.Bits(); i++ {
			testutils.FatalUnless(t, a.Bit(x, i) == xInt.Bit(i), "Bit %v wrong for %v", i, x)
		}
		for _, n := range []uint{0, 1, 7, uint(a.Bits() / 2), uint(a.Bits() - 1)} {
			lsh := new(big.Int).Lsh(xInt, n)
			lsh.Mod(lsh, R)
			testutils.FatalUnless(t, a.Lsh(x, n) == fromBig(lsh), "Lsh by %v wrong for %v", n, x)
			testutils.FatalUnless(t, a.Rsh(x, n) == fromBig(new(big.Int).Rsh(xInt, n)), "Rsh by %v wrong for %v", n, x)
		}

		for _, y := range ys {
			yInt := toBig(y)

			sum, carry := a.Add(x, y)
			sumInt := new(big.Int).Add(xInt, yInt)
			testutils.FatalUnless(t, carry == (sumInt.Cmp(R) >= 0), "Add carry wrong for %v + %v", x, y)
			testutils.FatalUnless(t, sum == fromBig(sumInt.Mod(sumInt, R)), "Add wrong for %v + %v", x, y)

			diff, borrow := a.Sub(x, y)
			diffInt := new(big.Int).Sub(xInt, yInt)
			testutils.FatalUnless(t, borrow == (diffInt.Sign() < 0), "Sub borrow wrong for %v - %v", x, y)
			testutils.FatalUnless(t, diff == fromBig(diffInt.Mod(diffInt, R)), "Sub wrong for %v - %v", x, y)

			prodInt := new(big.Int).Mul(xInt, yInt)
			hi, lo := a.MulWide(x, y)
			testutils.FatalUnless(t, hi == fromBig(new(big.Int).Rsh(prodInt, uint(a.Bits()))), "MulWide hi wrong for %v * %v", x, y)
			testutils.FatalUnless(t, lo == fromBig(new(big.Int).Mod(prodInt, R)), "MulWide lo wrong for %v * %v", x, y)
			testutils.FatalUnless(t, a.Mul(x, y) == lo, "Mul wrong for %v * %v", x, y)

			testutils.FatalUnless(t, a.Less(x, y) == (xInt.Cmp(yInt) < 0), "Less wrong for %v, %v", x, y)
			testutils.FatalUnless(t, a.Select(true, x, y) == x, "Select(true) wrong")
			testutils.FatalUnless(t, a.Select(false, x, y) == y, "Select(false) wrong")

			if yInt.Sign() == 0 {
				continue
			}
			q, r := a.DivMod(x, y)
			qInt, rInt := new(big.Int).QuoRem(xInt, yInt, new(big.Int))
			testutils.FatalUnless(t, q == fromBig(qInt) && r == fromBig(rInt), "DivMod wrong for %v / %v", x, y)

			// DivWide needs hi < d. We use hi := x mod y.
			_, hiW := a.DivMod(x, y)
			num := new(big.Int).Lsh(toBig(hiW), uint(a.Bits()))
			num.Add(num, toBig(lo))
			qInt, rInt = new(big.Int).QuoRem(num, yInt, new(big.Int))
			q, r = a.DivWide(hiW, lo, y)
			testutils.FatalUnless(t, q == fromBig(qInt) && r == fromBig(rInt), "DivWide wrong for (%v, %v) / %v", hiW, lo, y)
		}
	}
}

func TestDivWideOverflowPanics(t *testing.T) {
	didPanic, _ := testutils.CheckPanic(func() { Arith32{}.DivWide(5, 0, 5) })
	testutils.FatalUnless(t, didPanic, "DivWide did not panic on quotient overflow for uint32")
	didPanic, _ = testutils.CheckPanic(func() { Arith64{}.DivWide(7, 0, 5) })
	testutils.FatalUnless(t, didPanic, "DivWide did not panic on quotient overflow for uint64")
	didPanic, _ = testutils.CheckPanic(func() { Arith128{}.DivWide(Uint128{0, 1}, Uint128{}, Uint128{0, 1}) })
	testutils.FatalUnless(t, didPanic, "DivWide did not panic on quotient overflow for Uint128")
	didPanic, _ = testutils.CheckPanic(func() { Arith128{}.DivMod(Uint128{1, 0}, Uint128{}) })
	testutils.FatalUnless(t, didPanic, "DivMod did not panic on division by zero for Uint128")
}
