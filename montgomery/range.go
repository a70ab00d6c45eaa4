package montgomery

import "github.com/GottfriedHerold/montgomery/word"

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// RangePolicy is the constraint for the range variants [FullRange], [HalfRange], [QuarterRange] and [SqrtRange].
// It cannot be implemented outside this package.
//
// A range policy fixes
//   - the bound on the modulus,
//   - the set of valid raw values (which need not be fully reduced) and the canonical representative of each residue,
//   - the REDC variant that maps products of valid values back to valid values,
//   - addition and subtraction on valid values.
//
// [Form] implements everything else on top of these.
type RangePolicy[W comparable, A word.Arith[W]] interface {
	// Name is a short human-readable name of the variant
	Name() string

	maxModulus() W
	isValid(m *monty[W, A], x W) bool
	canonical(m *monty[W, A], x W) W
	fusing(m *monty[W, A], x W) W
	zero(m *monty[W, A]) W

	// convertIn returns the Montgomery representation of x, for arbitrary x.
	convertIn(m *monty[W, A], x W) W
	// redc reduces the product hi*R + lo of two valid values to a valid value.
	redc(m *monty[W, A], hi, lo W) W
	// redcWide reduces an arbitrary hi*R + lo with hi < n to a valid value.
	redcWide(m *monty[W, A], hi, lo W) W

	add(m *monty[W, A], x, y W) W
	sub(m *monty[W, A], x, y W) W
	unorderedSub(m *monty[W, A], x, y W) W
}
