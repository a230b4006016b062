package pipeline

import (
	"fmt"
	"sync"
)

// Memoize returns a version of fn that remembers up to roughly 2*maxSize
// results. fn must be pure: the memo table is keyed by input alone and may be
// shared by any number of sequences.
//
// Inputs are used as map keys directly; inputs that implement fmt.Stringer
// are keyed by their String() so non-comparable values can still be memoized.
// A non-comparable input without String() panics, as any unhashable map key does.
func Memoize[I, O any](fn func(I) O, maxSize uint32) func(I) O {
	memo := newMemoTable[O](maxSize)
	return func(in I) O {
		key := memoKey(in)
		if v, ok := memo.load(key); ok {
			return v
		}
		v := fn(in)
		memo.store(key, v)
		return v
	}
}

func memoKey(in any) any {
	if stringer, ok := in.(fmt.Stringer); ok {
		return stringer.String()
	}
	return in
}

// memoTable keeps two generations of results. When the head generation fills
// up, the older one is dropped and becomes the new, empty head.
type memoTable[O any] struct {
	mu      sync.Mutex
	gens    [2]*sync.Map
	headIdx uint32
	size    uint32
	maxSize uint32
}

func newMemoTable[O any](maxSize uint32) *memoTable[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &memoTable[O]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *memoTable[O]) load(key any) (O, bool) {
	t.mu.Lock()
	newer, older := t.gens[t.headIdx], t.gens[1-t.headIdx]
	t.mu.Unlock()

	v, ok := newer.Load(key)
	if !ok {
		v, ok = older.Load(key)
	}
	out, _ := v.(O)
	return out, ok
}

func (t *memoTable[O]) store(key any, value O) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.gens[t.headIdx] = &sync.Map{}
		t.size = 0
	}
	t.gens[t.headIdx].Store(key, value)
	t.size++
}
