package utils

import (
	"encoding/binary"
	"math/big"
)

const ErrorPrefix = "montgomery / internal / utils: "

// UIntSliceToInt converts a low-endian slice of uint64 limbs to a big.Int.
func UIntSliceToInt(z []uint64) *big.Int {
	bigEndianBytes := make([]byte, 8*len(z))
	for i, limb := range z {
		offset := 8 * (len(z) - 1 - i)
		binary.BigEndian.PutUint64(bigEndianBytes[offset:offset+8], limb)
	}
	return new(big.Int).SetBytes(bigEndianBytes)
}

// BigIntToUIntSlice writes x into the low-endian slice of limbs dst.
// We assume 0 <= x < 2^(64*len(dst)).
func BigIntToUIntSlice(x *big.Int, dst []uint64) {
	// As this is an internal function, panic is OK for error handling.
	if x.Sign() < 0 {
		panic(ErrorPrefix + "BigIntToUIntSlice: Trying to convert negative big Int")
	}
	if x.BitLen() > 64*len(dst) {
		panic(ErrorPrefix + "BigIntToUIntSlice: big Int too large to fit into destination")
	}
	bigEndianBytes := make([]byte, 8*len(dst))
	x.FillBytes(bigEndianBytes)
	for i := range dst {
		offset := 8 * (len(dst) - 1 - i)
		dst[i] = binary.BigEndian.Uint64(bigEndianBytes[offset : offset+8])
	}
}
