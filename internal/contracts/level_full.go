//go:build contracts_full

package contracts

// This file is only compiled if tags=contracts_full is set. This implies all checks of tags=contracts.

// Level is a constant whose value depends on build flags. See the package documentation.
const Level = Full
