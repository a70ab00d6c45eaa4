package modular

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/GottfriedHerold/montgomery/internal/testutils"
	"github.com/GottfriedHerold/montgomery/word"
	"pgregory.net/rapid"
)

func TestInverseModR(t *testing.T) {
	t.Run("uint8", testInverseModR[uint8, word.Arith8])
	t.Run("uint16", testInverseModR[uint16, word.Arith16])
	t.Run("uint32", testInverseModR[uint32, word.Arith32])
	t.Run("uint64", testInverseModR[uint64, word.Arith64])
	t.Run("Uint128", testInverseModR[word.Uint128, word.Arith128])
}

func testInverseModR[W comparable, A word.Arith[W]](t *testing.T) {
	var a A
	rng := rand.New(rand.NewSource(200 + int64(a.Bits())))
	one := a.FromUint64(1)
	R := new(big.Int).Lsh(big.NewInt(1), uint(a.Bits()))
	for _, n := range sampleModuli[W, A](rng, 200, true) {
		inv := InverseModR[W, A](n)
		testutils.FatalUnless(t, a.Mul(inv, n) == one, "InverseModR(%v) == %v is wrong", n, inv)
		expected := new(big.Int).ModInverse(a.ToBig(n), R)
		testutils.FatalUnless(t, a.ToBig(inv).Cmp(expected) == 0, "InverseModR(%v) does not match big.Int", n)

		negInv := NegativeInverseModR[W, A](n)
		testutils.FatalUnless(t, a.Mul(negInv, n) == a.Max(), "NegativeInverseModR(%v) == %v is wrong", n, negInv)
	}
}

func TestInverseModRExhaustive16(t *testing.T) {
	for n := 1; n < 1<<16; n += 2 {
		inv := InverseModR[uint16, word.Arith16](uint16(n))
		testutils.FatalUnless(t, inv*uint16(n) == 1, "InverseModR(%v) wrong", n)
	}
}

// The classical seed for the negative inverse, (3n) xor 12, is correct modulo 2^4; our seed for the positive inverse,
// (3n) xor 2, is correct modulo 2^5. Both determine the same unique inverses, so their low bits must agree.
func TestInverseModRSeeds(t *testing.T) {
	for n := uint16(1); n < 1<<15; n += 2 {
		negSeed := (3 * n) ^ 12
		posSeed := (3 * n) ^ 2
		testutils.FatalUnless(t, (negSeed*n)%16 == 15, "negative seed wrong for %v", n)
		testutils.FatalUnless(t, (posSeed*n)%32 == 1, "positive seed wrong for %v", n)
		testutils.FatalUnless(t, NegativeInverseModR[uint16, word.Arith16](n)%16 == negSeed%16, "NegativeInverseModR(%v) disagrees with seed", n)
		testutils.FatalUnless(t, InverseModR[uint16, word.Arith16](n)%32 == posSeed%32, "InverseModR(%v) disagrees with seed", n)
	}
}

func TestInverseModRProperty64(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Uint64().Draw(t, "n") | 1
		inv := InverseModR[uint64, word.Arith64](n)
		if inv*n != 1 {
			t.Fatalf("InverseModR(%v) == %v is wrong", n, inv)
		}
	})
}
