package testutils

import (
	"github.com/GottfriedHerold/montgomery/internal/contracts"
	"github.com/pkg/errors"
)

// CheckPanic runs fun and reports whether it panicked. The panic is recovered and its argument returned.
func CheckPanic(fun func()) (didPanic bool, panicValue any) {
	didPanic = true
	defer func() {
		panicValue = recover()
	}()
	fun()
	didPanic = false
	return
}

// CheckContractViolation runs fun and reports whether it panicked with a [contracts.Violation].
// Panics with other values are re-raised.
func CheckContractViolation(fun func()) bool {
	didPanic, panicValue := CheckPanic(fun)
	if !didPanic {
		return false
	}
	if err, ok := panicValue.(error); ok {
		var violation contracts.Violation
		if errors.As(err, &violation) {
			return true
		}
	}
	panic(panicValue)
}
