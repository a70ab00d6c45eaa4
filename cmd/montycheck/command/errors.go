package command

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	ErrInvalidNumber = errors.New(ErrorPrefix + "invalid number")
	ErrOutOfRange    = errors.New(ErrorPrefix + "number out of range")
	ErrUnknownForm   = errors.New(ErrorPrefix + "unknown combination of width and range variant")
	ErrMismatch      = errors.New(ErrorPrefix + "result differs from math/big")
)

// parseNumber parses a non-negative integer given in any base understood by big.Int's SetString with base 0.
// name is only used in error messages.
func parseNumber(name, s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidNumber, "%s: %q", name, s)
	}
	if x.Sign() < 0 {
		return nil, errors.Wrapf(ErrOutOfRange, "%s: %v is negative", name, x)
	}
	return x, nil
}
