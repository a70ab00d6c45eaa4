//go:build !contracts && !contracts_full

package contracts

// This file is only compiled if neither tags=contracts nor tags=contracts_full is set.

// Level is a constant whose value depends on build flags. See the package documentation.
const Level = Off
