package contracts

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestViolationPanics(t *testing.T) {
	require.NotPanics(t, func() { Pre(true, "fine") })
	require.NotPanics(t, func() { Post(true, "fine") })
	require.NotPanics(t, func() { Assert(true, "fine") })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(Violation)
		require.True(t, ok, "panic value has wrong type %T", r)
		require.Equal(t, Precondition, v.Kind)
		require.Equal(t, "x=5 out of range", v.Message)
		var err error = v
		var target Violation
		require.True(t, errors.As(err, &target))
		require.Equal(t, ErrorPrefix+"precondition violated: x=5 out of range", err.Error())
	}()
	Pre(false, "x=%v out of range", 5)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "postcondition", Postcondition.String())
	require.Equal(t, "invariant", Invariant.String())
	require.Equal(t, "contract kind 7", Kind(7).String())
}

func TestLevelIsKnown(t *testing.T) {
	require.Contains(t, []int{Off, Basic, Full}, Level)
}
