package montgomery

import "github.com/GottfriedHerold/montgomery/word"

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// This file defines aliases for all combinations of word size and range variant, together with their constructors.
// Each constructor returns an error wrapping ErrModulusTooSmall, ErrEvenModulus or ErrModulusTooLarge for unsuitable moduli.

// Full range Forms.
type (
	Full8   = Form[uint8, word.Arith8, FullRange[uint8, word.Arith8]]
	Full16  = Form[uint16, word.Arith16, FullRange[uint16, word.Arith16]]
	Full32  = Form[uint32, word.Arith32, FullRange[uint32, word.Arith32]]
	Full64  = Form[uint64, word.Arith64, FullRange[uint64, word.Arith64]]
	Full128 = Form[word.Uint128, word.Arith128, FullRange[word.Uint128, word.Arith128]]
)

// Half range Forms.
type (
	Half8   = Form[uint8, word.Arith8, HalfRange[uint8, word.Arith8]]
	Half16  = Form[uint16, word.Arith16, HalfRange[uint16, word.Arith16]]
	Half32  = Form[uint32, word.Arith32, HalfRange[uint32, word.Arith32]]
	Half64  = Form[uint64, word.Arith64, HalfRange[uint64, word.Arith64]]
	Half128 = Form[word.Uint128, word.Arith128, HalfRange[word.Uint128, word.Arith128]]
)

// Quarter range Forms.
type (
	Quarter8   = Form[uint8, word.Arith8, QuarterRange[uint8, word.Arith8]]
	Quarter16  = Form[uint16, word.Arith16, QuarterRange[uint16, word.Arith16]]
	Quarter32  = Form[uint32, word.Arith32, QuarterRange[uint32, word.Arith32]]
	Quarter64  = Form[uint64, word.Arith64, QuarterRange[uint64, word.Arith64]]
	Quarter128 = Form[word.Uint128, word.Arith128, QuarterRange[word.Uint128, word.Arith128]]
)

// Sqrt range Forms.
type (
	Sqrt8   = Form[uint8, word.Arith8, SqrtRange[uint8, word.Arith8]]
	Sqrt16  = Form[uint16, word.Arith16, SqrtRange[uint16, word.Arith16]]
	Sqrt32  = Form[uint32, word.Arith32, SqrtRange[uint32, word.Arith32]]
	Sqrt64  = Form[uint64, word.Arith64, SqrtRange[uint64, word.Arith64]]
	Sqrt128 = Form[word.Uint128, word.Arith128, SqrtRange[word.Uint128, word.Arith128]]
)

// NewFull8 through NewFull128 create full range Forms. See [New].
func NewFull8(n uint8) (*Full8, error) { return New[uint8, word.Arith8, FullRange[uint8, word.Arith8]](n) }
func NewFull16(n uint16) (*Full16, error) { return New[uint16, word.Arith16, FullRange[uint16, word.Arith16]](n) }
func NewFull32(n uint32) (*Full32, error) { return New[uint32, word.Arith32, FullRange[uint32, word.Arith32]](n) }
func NewFull64(n uint64) (*Full64, error) { return New[uint64, word.Arith64, FullRange[uint64, word.Arith64]](n) }
func NewFull128(n word.Uint128) (*Full128, error) { return New[word.Uint128, word.Arith128, FullRange[word.Uint128, word.Arith128]](n) }

// NewHalf8 through NewHalf128 create half range Forms. See [New].
func NewHalf8(n uint8) (*Half8, error) { return New[uint8, word.Arith8, HalfRange[uint8, word.Arith8]](n) }
func NewHalf16(n uint16) (*Half16, error) { return New[uint16, word.Arith16, HalfRange[uint16, word.Arith16]](n) }
func NewHalf32(n uint32) (*Half32, error) { return New[uint32, word.Arith32, HalfRange[uint32, word.Arith32]](n) }
func NewHalf64(n uint64) (*Half64, error) { return New[uint64, word.Arith64, HalfRange[uint64, word.Arith64]](n) }
func NewHalf128(n word.Uint128) (*Half128, error) { return New[word.Uint128, word.Arith128, HalfRange[word.Uint128, word.Arith128]](n) }

// NewQuarter8 through NewQuarter128 create quarter range Forms. See [New].
func NewQuarter8(n uint8) (*Quarter8, error) { return New[uint8, word.Arith8, QuarterRange[uint8, word.Arith8]](n) }
func NewQuarter16(n uint16) (*Quarter16, error) { return New[uint16, word.Arith16, QuarterRange[uint16, word.Arith16]](n) }
func NewQuarter32(n uint32) (*Quarter32, error) { return New[uint32, word.Arith32, QuarterRange[uint32, word.Arith32]](n) }
func NewQuarter64(n uint64) (*Quarter64, error) { return New[uint64, word.Arith64, QuarterRange[uint64, word.Arith64]](n) }
func NewQuarter128(n word.Uint128) (*Quarter128, error) { return New[word.Uint128, word.Arith128, QuarterRange[word.Uint128, word.Arith128]](n) }

// NewSqrt8 through NewSqrt128 create sqrt range Forms. See [New].
func NewSqrt8(n uint8) (*Sqrt8, error) { return New[uint8, word.Arith8, SqrtRange[uint8, word.Arith8]](n) }
func NewSqrt16(n uint16) (*Sqrt16, error) { return New[uint16, word.Arith16, SqrtRange[uint16, word.Arith16]](n) }
func NewSqrt32(n uint32) (*Sqrt32, error) { return New[uint32, word.Arith32, SqrtRange[uint32, word.Arith32]](n) }
func NewSqrt64(n uint64) (*Sqrt64, error) { return New[uint64, word.Arith64, SqrtRange[uint64, word.Arith64]](n) }
func NewSqrt128(n word.Uint128) (*Sqrt128, error) { return New[word.Uint128, word.Arith128, SqrtRange[word.Uint128, word.Arith128]](n) }

// Standard Forms, using plain modular arithmetic. These accept even moduli.
type (
	Standard8   = StandardForm[uint8, word.Arith8]
	Standard16  = StandardForm[uint16, word.Arith16]
	Standard32  = StandardForm[uint32, word.Arith32]
	Standard64  = StandardForm[uint64, word.Arith64]
	Standard128 = StandardForm[word.Uint128, word.Arith128]
)

// NewStandard8 through NewStandard128 create StandardForms. See [NewStandard].
func NewStandard8(n uint8) (*Standard8, error) { return NewStandard[uint8, word.Arith8](n) }
func NewStandard16(n uint16) (*Standard16, error) { return NewStandard[uint16, word.Arith16](n) }
func NewStandard32(n uint32) (*Standard32, error) { return NewStandard[uint32, word.Arith32](n) }
func NewStandard64(n uint64) (*Standard64, error) { return NewStandard[uint64, word.Arith64](n) }
func NewStandard128(n word.Uint128) (*Standard128, error) { return NewStandard[word.Uint128, word.Arith128](n) }

// Default Forms for moduli of a given size.
//
// If there is a native word of twice the size (at most 64 bits), the sqrt range variant on that word is fastest
// and admits every modulus of the given size. Otherwise, we use the full range variant, which admits all odd moduli.
// Note that the raw word type of Default8 is uint16, etc.
type (
	Default8   = Sqrt16
	Default16  = Sqrt32
	Default32  = Sqrt64
	Default64  = Full64
	Default128 = Full128
)

// NewDefault8 through NewDefault128 create the Default Form for an odd modulus n > 1 of the given size.
func NewDefault8(n uint8) (*Default8, error) { return NewSqrt16(uint16(n)) }
func NewDefault16(n uint16) (*Default16, error) { return NewSqrt32(uint32(n)) }
func NewDefault32(n uint32) (*Default32, error) { return NewSqrt64(uint64(n)) }
func NewDefault64(n uint64) (*Default64, error) { return NewFull64(n) }
func NewDefault128(n word.Uint128) (*Default128, error) { return NewFull128(n) }
