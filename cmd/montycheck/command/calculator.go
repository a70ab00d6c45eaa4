package command

import (
	"math/big"

	"github.com/GottfriedHerold/montgomery/modular"
	"github.com/GottfriedHerold/montgomery/montgomery"
	"github.com/GottfriedHerold/montgomery/word"
	"github.com/pkg/errors"
)

// calculator is a Montgomery form (or a standard form) of some fixed word size and range variant, with residues given as big.Int.
// Inputs are reduced modulo the modulus first; outputs are in [0, n).
type calculator interface {
	Bits() int
	RangeName() string
	Modulus() *big.Int
	MaxModulus() *big.Int
	// Radix is R for Montgomery forms and 1 for the standard form, i.e. x is represented by x * Radix mod n.
	Radix() *big.Int

	// Montgomery returns the raw representation of x and the result of converting it back.
	Montgomery(x *big.Int) (raw, roundTrip *big.Int)
	Add(x, y *big.Int) *big.Int
	Subtract(x, y *big.Int) *big.Int
	// UnorderedSubtract returns either x - y or y - x.
	UnorderedSubtract(x, y *big.Int) *big.Int
	Negate(x *big.Int) *big.Int
	Multiply(x, y *big.Int) *big.Int
	Square(x *big.Int) *big.Int
	FMAdd(x, y, z *big.Int) *big.Int
	FMSub(x, y, z *big.Int) *big.Int
	FusedSquareAdd(x, z *big.Int) *big.Int
	FusedSquareSub(x, z *big.Int) *big.Int
	Pow(x, e *big.Int) (*big.Int, error)
	PowArray(xs []*big.Int, e *big.Int) ([]*big.Int, error)
	TwoPow(e *big.Int) (*big.Int, error)
	// ReferencePow computes x^e mod n without Montgomery form.
	ReferencePow(x, e *big.Int) (*big.Int, error)
	Inverse(x *big.Int) (inv *big.Int, ok bool)
}

const standardRange = "standard"

type formKey struct {
	bits      int
	rangeName string
}

var calculatorConstructors = map[formKey]func(n *big.Int) (calculator, error){
	{8, "full"}:      newCalculator[uint8, word.Arith8, montgomery.FullRange[uint8, word.Arith8]],
	{16, "full"}:     newCalculator[uint16, word.Arith16, montgomery.FullRange[uint16, word.Arith16]],
	{32, "full"}:     newCalculator[uint32, word.Arith32, montgomery.FullRange[uint32, word.Arith32]],
	{64, "full"}:     newCalculator[uint64, word.Arith64, montgomery.FullRange[uint64, word.Arith64]],
	{128, "full"}:    newCalculator[word.Uint128, word.Arith128, montgomery.FullRange[word.Uint128, word.Arith128]],
	{8, "half"}:      newCalculator[uint8, word.Arith8, montgomery.HalfRange[uint8, word.Arith8]],
	{16, "half"}:     newCalculator[uint16, word.Arith16, montgomery.HalfRange[uint16, word.Arith16]],
	{32, "half"}:     newCalculator[uint32, word.Arith32, montgomery.HalfRange[uint32, word.Arith32]],
	{64, "half"}:     newCalculator[uint64, word.Arith64, montgomery.HalfRange[uint64, word.Arith64]],
	{128, "half"}:    newCalculator[word.Uint128, word.Arith128, montgomery.HalfRange[word.Uint128, word.Arith128]],
	{8, "quarter"}:   newCalculator[uint8, word.Arith8, montgomery.QuarterRange[uint8, word.Arith8]],
	{16, "quarter"}:  newCalculator[uint16, word.Arith16, montgomery.QuarterRange[uint16, word.Arith16]],
	{32, "quarter"}:  newCalculator[uint32, word.Arith32, montgomery.QuarterRange[uint32, word.Arith32]],
	{64, "quarter"}:  newCalculator[uint64, word.Arith64, montgomery.QuarterRange[uint64, word.Arith64]],
	{128, "quarter"}: newCalculator[word.Uint128, word.Arith128, montgomery.QuarterRange[word.Uint128, word.Arith128]],
	{8, "sqrt"}:      newCalculator[uint8, word.Arith8, montgomery.SqrtRange[uint8, word.Arith8]],
	{16, "sqrt"}:     newCalculator[uint16, word.Arith16, montgomery.SqrtRange[uint16, word.Arith16]],
	{32, "sqrt"}:     newCalculator[uint32, word.Arith32, montgomery.SqrtRange[uint32, word.Arith32]],
	{64, "sqrt"}:     newCalculator[uint64, word.Arith64, montgomery.SqrtRange[uint64, word.Arith64]],
	{128, "sqrt"}:    newCalculator[word.Uint128, word.Arith128, montgomery.SqrtRange[word.Uint128, word.Arith128]],

	{8, standardRange}:   newStandardCalculator[uint8, word.Arith8],
	{16, standardRange}:  newStandardCalculator[uint16, word.Arith16],
	{32, standardRange}:  newStandardCalculator[uint32, word.Arith32],
	{64, standardRange}:  newStandardCalculator[uint64, word.Arith64],
	{128, standardRange}: newStandardCalculator[word.Uint128, word.Arith128],
}

// getCalculator returns a calculator for the given word size, range variant and modulus.
func getCalculator(bits int, rangeName string, n *big.Int) (calculator, error) {
	constructor, ok := calculatorConstructors[formKey{bits, rangeName}]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownForm, "width %d, range %q", bits, rangeName)
	}
	return constructor(n)
}

// maxModulus returns the largest modulus supported for the given word size and range variant.
func maxModulus(bits int, rangeName string) (*big.Int, error) {
	c, err := getCalculator(bits, rangeName, big.NewInt(3))
	if err != nil {
		return nil, err
	}
	return c.MaxModulus(), nil
}

type bigForm[W comparable, A word.Arith[W], P any] struct {
	f     montgomery.Arithmetic[W, P]
	n     *big.Int
	radix *big.Int
}

func newCalculator[W comparable, A word.Arith[W], P montgomery.RangePolicy[W, A]](n *big.Int) (calculator, error) {
	var a A
	return newBigForm[W, A, P](n, montgomery.New[W, A, P], new(big.Int).Lsh(big.NewInt(1), uint(a.Bits())))
}

func newStandardCalculator[W comparable, A word.Arith[W]](n *big.Int) (calculator, error) {
	return newBigForm[W, A, montgomery.StandardMath](n, montgomery.NewStandard[W, A], big.NewInt(1))
}

func newBigForm[W comparable, A word.Arith[W], P any, F montgomery.Arithmetic[W, P]](n *big.Int, create func(W) (F, error), radix *big.Int) (calculator, error) {
	var a A
	nWord, ok := a.FromBig(n)
	if !ok {
		return nil, errors.Wrapf(ErrOutOfRange, "modulus %v does not fit into %d bits", n, a.Bits())
	}
	f, err := create(nWord)
	if err != nil {
		return nil, err
	}
	return &bigForm[W, A, P]{f: f, n: new(big.Int).Set(n), radix: radix}, nil
}

// in returns the Montgomery form of x mod n
func (c *bigForm[W, A, P]) in(x *big.Int) montgomery.Value[W, P] {
	var a A
	reduced, ok := a.FromBig(new(big.Int).Mod(x, c.n))
	if !ok {
		panic(ErrorPrefix + "reduced value does not fit into word")
	}
	return c.f.ConvertIn(reduced)
}

func (c *bigForm[W, A, P]) out(x montgomery.Value[W, P]) *big.Int {
	var a A
	return a.ToBig(c.f.ConvertOut(x))
}

func (c *bigForm[W, A, P]) exponent(e *big.Int) (W, error) {
	var a A
	w, ok := a.FromBig(e)
	if !ok {
		return w, errors.Wrapf(ErrOutOfRange, "exponent %v does not fit into %d bits", e, a.Bits())
	}
	return w, nil
}

func (c *bigForm[W, A, P]) Bits() int {
	var a A
	return a.Bits()
}

func (c *bigForm[W, A, P]) RangeName() string { return c.f.RangeName() }

func (c *bigForm[W, A, P]) Modulus() *big.Int { return new(big.Int).Set(c.n) }

func (c *bigForm[W, A, P]) MaxModulus() *big.Int {
	var a A
	return a.ToBig(c.f.MaxModulus())
}

func (c *bigForm[W, A, P]) Radix() *big.Int { return new(big.Int).Set(c.radix) }

func (c *bigForm[W, A, P]) Montgomery(x *big.Int) (raw, roundTrip *big.Int) {
	var a A
	v := c.in(x)
	return a.ToBig(v.Raw()), c.out(v)
}

func (c *bigForm[W, A, P]) Add(x, y *big.Int) *big.Int {
	return c.out(c.f.Add(c.in(x), c.in(y)))
}

func (c *bigForm[W, A, P]) Subtract(x, y *big.Int) *big.Int {
	return c.out(c.f.Subtract(c.in(x), c.in(y)))
}

func (c *bigForm[W, A, P]) UnorderedSubtract(x, y *big.Int) *big.Int {
	return c.out(c.f.UnorderedSubtract(c.in(x), c.in(y)))
}

func (c *bigForm[W, A, P]) Negate(x *big.Int) *big.Int {
	return c.out(c.f.Negate(c.in(x)))
}

func (c *bigForm[W, A, P]) Multiply(x, y *big.Int) *big.Int {
	return c.out(c.f.Multiply(c.in(x), c.in(y)))
}

func (c *bigForm[W, A, P]) Square(x *big.Int) *big.Int {
	return c.out(c.f.Square(c.in(x)))
}

func (c *bigForm[W, A, P]) fusing(z *big.Int) montgomery.Fusing[W, P] {
	return c.f.Fusing(c.in(z))
}

func (c *bigForm[W, A, P]) FMAdd(x, y, z *big.Int) *big.Int {
	return c.out(c.f.FMAdd(c.in(x), c.in(y), c.fusing(z)))
}

func (c *bigForm[W, A, P]) FMSub(x, y, z *big.Int) *big.Int {
	return c.out(c.f.FMSub(c.in(x), c.in(y), c.fusing(z)))
}

func (c *bigForm[W, A, P]) FusedSquareAdd(x, z *big.Int) *big.Int {
	return c.out(c.f.FusedSquareAdd(c.in(x), c.fusing(z)))
}

func (c *bigForm[W, A, P]) FusedSquareSub(x, z *big.Int) *big.Int {
	return c.out(c.f.FusedSquareSub(c.in(x), c.fusing(z)))
}

func (c *bigForm[W, A, P]) Pow(x, e *big.Int) (*big.Int, error) {
	exponent, err := c.exponent(e)
	if err != nil {
		return nil, err
	}
	return c.out(c.f.Pow(c.in(x), exponent)), nil
}

func (c *bigForm[W, A, P]) PowArray(xs []*big.Int, e *big.Int) ([]*big.Int, error) {
	exponent, err := c.exponent(e)
	if err != nil {
		return nil, err
	}
	bases := make([]montgomery.Value[W, P], len(xs))
	for i, x := range xs {
		bases[i] = c.in(x)
	}
	powers := c.f.PowArray(bases, exponent)
	ret := make([]*big.Int, len(powers))
	for i, power := range powers {
		ret[i] = c.out(power)
	}
	return ret, nil
}

func (c *bigForm[W, A, P]) TwoPow(e *big.Int) (*big.Int, error) {
	exponent, err := c.exponent(e)
	if err != nil {
		return nil, err
	}
	return c.out(c.f.TwoPow(exponent)), nil
}

func (c *bigForm[W, A, P]) ReferencePow(x, e *big.Int) (*big.Int, error) {
	var a A
	exponent, err := c.exponent(e)
	if err != nil {
		return nil, err
	}
	base, _ := a.FromBig(new(big.Int).Mod(x, c.n))
	return a.ToBig(modular.Pow[W, A](base, exponent, c.f.Modulus())), nil
}

func (c *bigForm[W, A, P]) Inverse(x *big.Int) (*big.Int, bool) {
	inv := c.f.Inverse(c.in(x))
	if inv == c.f.Zero() {
		return nil, false
	}
	return c.out(inv.Value()), true
}
