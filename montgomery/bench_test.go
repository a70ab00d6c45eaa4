package montgomery

import (
	"math/rand"
	"testing"

	"github.com/GottfriedHerold/montgomery/internal/testutils"
	"github.com/GottfriedHerold/montgomery/word"
)

// This file contains the benchmarks for the arithmetic operations of Form.
//
// Benchmarks all follow the same pattern in order to make the overhead comparable:
// we run the operation on (fixed, pseudo-)random inputs taken from a cache and write the result to a global Dump array.
// Writing to a package-level variable prevents the compiler from optimizing the computation away.

// size of inputs and Dump arrays used in benchmarks
const benchS = 1 << 8

var (
	DumpWord64  [benchS]uint64
	DumpWord128 [benchS]word.Uint128
	DumpBools   [benchS]bool
)

// benchModulus64 is a 31-bit prime, so it is valid for all range variants.
const benchModulus64 = 2147483647

// cachedWords64 holds random uint64, keyed by seed.
var cachedWords64 = testutils.MakeSampleCache(testutils.DefaultSeedFun, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil)

// cachedWords128 holds random Uint128, keyed by seed.
var cachedWords128 = testutils.MakeSampleCache(testutils.DefaultSeedFun, func(rng *rand.Rand, _ int64) word.Uint128 {
	return word.Uint128{rng.Uint64(), rng.Uint64()}
}, nil)

// prepareBenchmark should be called in every (sub-)benchmark after the setup.
func prepareBenchmark(b *testing.B) {
	b.ResetTimer()
}

func benchValues64[P any](f Arithmetic[uint64, P], seed int64) []Value[uint64, P] {
	words := cachedWords64.GetElements(seed, benchS)
	ret := make([]Value[uint64, P], benchS)
	for i, w := range words {
		ret[i] = f.ConvertIn(w)
	}
	return ret
}

func Benchmark_Form64(b *testing.B) {
	b.Run("Full", benchmarkForm64[FullRange[uint64, word.Arith64]])
	b.Run("Half", benchmarkForm64[HalfRange[uint64, word.Arith64]])
	b.Run("Quarter", benchmarkForm64[QuarterRange[uint64, word.Arith64]])
	b.Run("Sqrt", benchmarkForm64[SqrtRange[uint64, word.Arith64]])
	b.Run("Standard", func(b *testing.B) {
		f, err := NewStandard64(benchModulus64)
		testutils.Assert(err == nil, err)
		benchmarkArithmetic64[StandardMath](b, f)
	})
}

func benchmarkForm64[P RangePolicy[uint64, word.Arith64]](b *testing.B) {
	benchmarkArithmetic64[P](b, MustNew[uint64, word.Arith64, P](benchModulus64))
}

func benchmarkArithmetic64[P any](b *testing.B, f Arithmetic[uint64, P]) {

	b.Run("ConvertIn", func(b *testing.B) {
		bench_x := cachedWords64.GetElements(1, benchS)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.ConvertIn(bench_x[n%benchS]).raw
		}
	})
	b.Run("ConvertOut", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.ConvertOut(bench_x[n%benchS])
		}
	})
	b.Run("Multiply", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_y := benchValues64[P](f, 2)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.Multiply(bench_x[n%benchS], bench_y[n%benchS]).raw
		}
	})
	b.Run("Add", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_y := benchValues64[P](f, 2)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.Add(bench_x[n%benchS], bench_y[n%benchS]).raw
		}
	})
	b.Run("Subtract", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_y := benchValues64[P](f, 2)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.Subtract(bench_x[n%benchS], bench_y[n%benchS]).raw
		}
	})
	b.Run("FMAdd", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_y := benchValues64[P](f, 2)
		bench_z := benchValues64[P](f, 3)
		bench_zf := make([]Fusing[uint64, P], benchS)
		for i := range bench_z {
			bench_zf[i] = f.Fusing(bench_z[i])
		}
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.FMAdd(bench_x[n%benchS], bench_y[n%benchS], bench_zf[n%benchS]).raw
		}
	})
	b.Run("MultiplyIsZero", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_y := benchValues64[P](f, 2)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			var v Value[uint64, P]
			v, DumpBools[n%benchS] = f.MultiplyIsZero(bench_x[n%benchS], bench_y[n%benchS])
			DumpWord64[n%benchS] = v.raw
		}
	})
	b.Run("Inverse", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.Inverse(bench_x[n%benchS]).raw
		}
	})
	b.Run("Pow", func(b *testing.B) {
		bench_x := benchValues64[P](f, 1)
		bench_e := cachedWords64.GetElements(2, benchS)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.Pow(bench_x[n%benchS], bench_e[n%benchS]).raw
		}
	})
	b.Run("TwoPow", func(b *testing.B) {
		bench_e := cachedWords64.GetElements(2, benchS)
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord64[n%benchS] = f.TwoPow(bench_e[n%benchS]).raw
		}
	})
}

func Benchmark_Form128(b *testing.B) {
	f, err := NewFull128(word.Uint128{0xffffffff00000001, 0x00000000fffffffe}) // odd
	testutils.Assert(err == nil, err)
	words := cachedWords128.GetElements(1, benchS)
	bench_x := make([]Value[word.Uint128, FullRange[word.Uint128, word.Arith128]], benchS)
	for i, w := range words {
		bench_x[i] = f.ConvertIn(w)
	}
	b.Run("Multiply", func(b *testing.B) {
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord128[n%benchS] = f.Multiply(bench_x[n%benchS], bench_x[(n+1)%benchS]).raw
		}
	})
	b.Run("Pow", func(b *testing.B) {
		prepareBenchmark(b)
		for n := 0; n < b.N; n++ {
			DumpWord128[n%benchS] = f.Pow(bench_x[n%benchS], words[(n+1)%benchS]).raw
		}
	})
}
