// Package contracts provides the contract-checking facility used throughout this module.
//
// Functions in this module document preconditions (e.g. "x must be a valid value for this Montgomery form")
// that are NOT checked in normal builds: violating them results in garbage output rather than an error.
// Building with tags=contracts enables cheap checks (level [Basic]); building with tags=contracts_full additionally
// enables expensive checks (level [Full]), such as re-verifying results of REDC against a slow computation.
//
// Call sites guard checks by the compile-time constant [Level], as in
//
//	if contracts.Level >= contracts.Basic {
//		contracts.Pre(x < n, "input out of range")
//	}
//
// With the default build, Level is [Off] and the compiler removes the guarded code entirely.
// A failed check panics with a [Violation].
package contracts

import "fmt"

// ErrorPrefix is the prefix used by all panic messages originating from this package.
const ErrorPrefix = "montgomery / contracts: "

// Contract checking levels. See the package documentation.
const (
	Off   = 0
	Basic = 1
	Full  = 2
)

// Kind classifies violated contracts.
type Kind int

const (
	Precondition Kind = iota
	Postcondition
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Postcondition:
		return "postcondition"
	case Invariant:
		return "invariant"
	default:
		return fmt.Sprintf("contract kind %d", int(k))
	}
}

// Violation is the panic value used when a checked contract fails.
type Violation struct {
	Kind    Kind
	Message string
}

func (v Violation) Error() string {
	return ErrorPrefix + v.Kind.String() + " violated: " + v.Message
}

func check(kind Kind, condition bool, format string, args []any) {
	if !condition {
		panic(Violation{Kind: kind, Message: fmt.Sprintf(format, args...)})
	}
}

// Pre panics with a Violation if condition is false. Callers should guard calls by Level.
func Pre(condition bool, format string, args ...any) {
	check(Precondition, condition, format, args)
}

// Post panics with a Violation if condition is false. Callers should guard calls by Level.
func Post(condition bool, format string, args ...any) {
	check(Postcondition, condition, format, args)
}

// Assert panics with a Violation if condition is false. Callers should guard calls by Level.
func Assert(condition bool, format string, args ...any) {
	check(Invariant, condition, format, args)
}
