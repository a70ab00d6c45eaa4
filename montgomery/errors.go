package montgomery

import "github.com/pkg/errors"

// This file is part of the montgomery package. See the documentation of form.go for general remarks.

// This file collects all errors that can be returned by functions in this package.
//
// IMPORTANT: We return errors wrapping the ones given here. Never compare errors for equality. Use [errors.Is]

// ErrorPrefix is the prefix used by all error message strings originating from this package.
const ErrorPrefix = "montgomery: "

var (
	ErrModulusTooSmall = errors.New(ErrorPrefix + "modulus must be > 1")
	ErrEvenModulus     = errors.New(ErrorPrefix + "modulus must be odd")
	ErrModulusTooLarge = errors.New(ErrorPrefix + "modulus exceeds the bound of the chosen range variant")
)
