package testutils

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
)

// This file defines SampleCache, a thread-safe cache of pseudo-random test inputs.
//
// From a user's point of view, a SampleCache is a map from keys to lists of elements. GetElements(key, n) returns the first n
// elements of the list stored under key, extending the list on demand. The list for a given key is created from an rng
// seeded by the key, so it is deterministic and asking for fewer elements later gives a prefix of what was returned before.
// Creating elements may be expensive (e.g. sampling moduli together with their Montgomery forms), which is why we cache.

// samplePage holds the elements for a single key.
type samplePage[KeyType comparable, ElementType any] struct {
	mutex    sync.RWMutex
	rng      *rand.Rand
	elements []ElementType
	key      KeyType
}

// SampleCache stores, for each key of type KeyType, a list of ElementType. See the file comment for details.
// Create SampleCaches with [MakeSampleCache].
type SampleCache[KeyType comparable, ElementType any] struct {
	tableMutex sync.RWMutex
	pages      map[KeyType]*samplePage[KeyType, ElementType] // once created, pages[key] never changes
	seedFun    func(KeyType) *rand.Rand
	createFun  func(*rand.Rand, KeyType) ElementType
	copyFun    func(ElementType) ElementType
}

// MakeSampleCache creates a SampleCache.
// seedFun creates the rng for a given key and createFun creates a new element from it.
// copyFun is used to copy elements on retrieval and may be nil (meaning elements are copied by assignment).
// This is needed e.g. if ElementType is a pointer type, as users must not be able to modify the cache.
func MakeSampleCache[KeyType comparable, ElementType any](seedFun func(KeyType) *rand.Rand, createFun func(*rand.Rand, KeyType) ElementType, copyFun func(ElementType) ElementType) *SampleCache[KeyType, ElementType] {
	Assert(seedFun != nil && createFun != nil, "montgomery / testutils: MakeSampleCache requires seedFun and createFun")
	if copyFun == nil {
		copyFun = func(in ElementType) ElementType { return in }
	}
	return &SampleCache[KeyType, ElementType]{
		pages:     make(map[KeyType]*samplePage[KeyType, ElementType]),
		seedFun:   seedFun,
		createFun: createFun,
		copyFun:   copyFun,
	}
}

// DefaultSeedFun can be used as a seedFun for [MakeSampleCache] if the key is an int64.
func DefaultSeedFun(key int64) *rand.Rand {
	return rand.New(rand.NewSource(key))
}

// Prepopulate stores the given elements (copied) as the start of the list for key.
// This only works for keys that were never used before; we panic otherwise.
func (sc *SampleCache[KeyType, ElementType]) Prepopulate(key KeyType, elements []ElementType) {
	sc.tableMutex.Lock()
	defer sc.tableMutex.Unlock()
	if _, ok := sc.pages[key]; ok {
		panic(errors.Errorf("montgomery / testutils: trying to prepopulate sample cache under key %v, which already exists", key))
	}
	page := &samplePage[KeyType, ElementType]{rng: sc.seedFun(key), key: key}
	for _, element := range elements {
		page.elements = append(page.elements, sc.copyFun(element))
	}
	sc.pages[key] = page
}

// GetElements returns (copies of) the first amount many elements stored under key, creating them if needed.
func (sc *SampleCache[KeyType, ElementType]) GetElements(key KeyType, amount int) []ElementType {
	ret := make([]ElementType, amount)
	if amount == 0 {
		return ret
	}
	page := sc.getPage(key)

	page.mutex.RLock()
	if len(page.elements) < amount {
		// sync.RWMutex cannot upgrade read-locks, so other goroutines may extend the page in between. This is fine.
		page.mutex.RUnlock()
		page.mutex.Lock()
		for len(page.elements) < amount {
			page.elements = append(page.elements, sc.createFun(page.rng, page.key))
		}
		page.mutex.Unlock()
		page.mutex.RLock()
	}
	for i := range ret {
		ret[i] = sc.copyFun(page.elements[i])
	}
	page.mutex.RUnlock()
	return ret
}

// getPage returns the page for key, creating it if necessary. If several goroutines race to create it, the first one wins.
func (sc *SampleCache[KeyType, ElementType]) getPage(key KeyType) *samplePage[KeyType, ElementType] {
	sc.tableMutex.RLock()
	page, ok := sc.pages[key]
	sc.tableMutex.RUnlock()
	if ok {
		return page
	}
	newPage := &samplePage[KeyType, ElementType]{rng: sc.seedFun(key), key: key}
	sc.tableMutex.Lock()
	defer sc.tableMutex.Unlock()
	if page, ok = sc.pages[key]; ok {
		return page
	}
	sc.pages[key] = newPage
	return newPage
}
