package testutils

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestCache() *SampleCache[int64, uint64] {
	return MakeSampleCache[int64, uint64](DefaultSeedFun, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil)
}

func TestRetrieveSamples(t *testing.T) {
	cache := makeTestCache()
	const key1 = 10
	const key2 = 11
	data1 := cache.GetElements(key1, 0)
	FatalUnless(t, data1 != nil, "nil returned")
	FatalUnless(t, len(data1) == 0, "invalid length")

	data21 := cache.GetElements(key2, 100)
	data22 := cache.GetElements(key2, 100)
	require.Len(t, data21, 100)
	require.Len(t, data22, 100)
	FatalUnless(t, &data21[0] != &data22[0], "aliasing")
	assert.Equal(t, data21, data22)

	data23 := cache.GetElements(key2, 50)
	data24 := cache.GetElements(key2, 200)
	assert.Equal(t, data23, data24[:50], "no prefix")
	assert.Equal(t, data21, data24[:100], "no prefix")

	// A fresh cache with the same seed must produce the same data.
	assert.Equal(t, data24, makeTestCache().GetElements(key2, 200))

	didPanic, _ := CheckPanic(func() { cache.Prepopulate(key2, []uint64{}) })
	FatalUnless(t, didPanic, "did not panic")
	cache.Prepopulate(20, []uint64{1, 2, 3})
	data3 := cache.GetElements(20, 4)
	assert.Equal(t, []uint64{1, 2, 3}, data3[:3], "did not get back prepopulated data")
}

func TestSampleCacheConcurrent(t *testing.T) {
	cache := makeTestCache()
	expected := makeTestCache().GetElements(5, 500)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			got := cache.GetElements(5, amount)
			assert.Equal(t, expected[:amount], got)
		}(100 + 50*i)
	}
	wg.Wait()
}

func TestCheckPanic(t *testing.T) {
	didPanic, value := CheckPanic(func() { panic("boom") })
	require.True(t, didPanic)
	require.Equal(t, "boom", value)
	didPanic, value = CheckPanic(func() {})
	require.False(t, didPanic)
	require.Nil(t, value)
}
