package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigIntConversion(t *testing.T) {
	limbs := []uint64{0x0123456789abcdef, 0xfedcba9876543210}
	x := UIntSliceToInt(limbs)
	expected, _ := new(big.Int).SetString("0xfedcba98765432100123456789abcdef", 0)
	require.Zero(t, x.Cmp(expected))

	var back [2]uint64
	BigIntToUIntSlice(x, back[:])
	require.Equal(t, limbs, back[:])

	BigIntToUIntSlice(big.NewInt(5), back[:])
	require.Equal(t, [2]uint64{5, 0}, back)

	require.Zero(t, UIntSliceToInt(nil).Sign())
	require.Panics(t, func() { BigIntToUIntSlice(big.NewInt(-1), back[:]) })
	require.Panics(t, func() { BigIntToUIntSlice(new(big.Int).Lsh(big.NewInt(1), 128), back[:]) })
}
