//go:build contracts && !contracts_full

package contracts

// This file is only compiled if tags=contracts is set (and tags=contracts_full is not).

// Level is a constant whose value depends on build flags. See the package documentation.
const Level = Basic
