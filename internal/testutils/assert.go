// Package testutils contains helper functions that are shared by the tests of several packages of this module.
package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, err) panics with panic(err) if condition is false.
//
// This is meant for setup code in tests, where a failure indicates a bug in the test itself.
func Assert(condition bool, err ...any) {
	if len(err) > 1 {
		panic("montgomery / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("This is not supposed to be possible")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless fails the test with the given message if condition is false. It also prints a stack trace to locate the caller.
func FatalUnless(t testing.TB, condition bool, formatString string, args ...any) {
	t.Helper()
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatString, args...)
	}
}
