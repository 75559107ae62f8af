// Package arena implements index-addressed slot storage. Slots are handed out
// by Alloc and given back by Free, and released slots are recycled before the
// backing slice grows. Indices stay stable for the lifetime of a slot, which
// lets owners link values together by index instead of by pointer.
package arena

import (
	"errors"

	"hop.computer/linkedlist/pkg"
)

// None is the index that refers to no slot.
const None = -1

// ErrExhausted is returned by Alloc when the arena is at its limit.
var ErrExhausted = errors.New("arena exhausted")

// Stats counts slot traffic over the lifetime of an arena.
type Stats struct {
	Allocs int // slots handed out by Alloc
	Frees  int // slots given back by Free
	Live   int // Allocs - Frees
}

type slot[T any] struct {
	v    T
	live bool
}

// Arena stores values of type T in numbered slots. The zero value is an empty,
// unlimited arena. An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	limit int
	stats Stats
}

// New returns an empty arena whose backing storage is preallocated for hint
// slots. The hint is not a bound.
func New[T any](hint int) *Arena[T] {
	if hint < 0 {
		hint = 0
	}
	return &Arena[T]{
		slots: make([]slot[T], 0, hint),
	}
}

// SetLimit caps the number of live slots. A limit of zero or less removes the
// cap. Lowering the limit below Live does not free anything; it only makes
// further calls to Alloc fail.
func (a *Arena[T]) SetLimit(n int) {
	if n < 0 {
		n = 0
	}
	a.limit = n
}

// Limit returns the live slot cap, or zero if there is none.
func (a *Arena[T]) Limit() int {
	return a.limit
}

// Alloc stores v in a free slot and returns its index.
func (a *Arena[T]) Alloc(v T) (int, error) {
	if a.limit > 0 && a.stats.Live >= a.limit {
		return None, ErrExhausted
	}
	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = len(a.slots) - 1
	}
	a.slots[i] = slot[T]{v: v, live: true}
	a.stats.Allocs++
	a.stats.Live++
	return i, nil
}

// At returns a pointer to the value in slot i. The pointer is only valid until
// the next call to Alloc, which may move the backing storage. At panics if i
// is not a live slot.
func (a *Arena[T]) At(i int) *T {
	a.mustBeLive(i, "At")
	return &a.slots[i].v
}

// Free releases slot i. The stored value is zeroed so the arena no longer
// references anything it pointed to. Freeing a slot twice panics.
func (a *Arena[T]) Free(i int) {
	a.mustBeLive(i, "Free")
	a.slots[i] = slot[T]{}
	a.free = append(a.free, i)
	a.stats.Frees++
	a.stats.Live--
}

// IsLive reports whether i refers to an allocated slot.
func (a *Arena[T]) IsLive(i int) bool {
	return i >= 0 && i < len(a.slots) && a.slots[i].live
}

// Stats returns the allocation counters.
func (a *Arena[T]) Stats() Stats {
	return a.stats
}

// Cap returns the number of slots the arena can hold before it has to grow its
// backing storage.
func (a *Arena[T]) Cap() int {
	return cap(a.slots)
}

func (a *Arena[T]) mustBeLive(i int, op string) {
	pkg.Assertf(a.IsLive(i), "arena: %s on slot %d which is not live", op, i)
}
