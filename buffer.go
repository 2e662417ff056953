package deque

import (
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// buffer is a fixed capacity ring of slots. Logical index i lives in slot
// (start+i) mod len(slots). Slots outside the live window always hold the
// zero value of T.
//
// A buffer is shared by every Deque handle bound to it, and refs counts those
// handles. Only a buffer with refs == 1 may be written to.
type buffer[T any] struct {
	slots []T
	start int
	count int
	refs  atomic.Int32
}

func newBuffer[T any](capacity int) *buffer[T] {
	b := &buffer[T]{slots: make([]T, capacity)}
	b.refs.Store(1)
	return b
}

func (b *buffer[T]) capacity() int { return len(b.slots) }
func (b *buffer[T]) len() int      { return b.count }
func (b *buffer[T]) empty() bool   { return b.count == 0 }
func (b *buffer[T]) full() bool    { return b.count == len(b.slots) }

// wrap reduces any slot position, including negative ones, to [0, capacity).
func (b *buffer[T]) wrap(p int) int {
	c := len(b.slots)
	p %= c
	if p < 0 {
		p += c
	}
	return p
}

// physical translates a logical index to its slot. It accepts indexes just
// outside the live window, which the gap algorithm uses as scratch space.
func (b *buffer[T]) physical(i int) int {
	return b.wrap(b.start + i)
}

// logical translates a slot back to its logical index. The result is only
// meaningful for slots inside the live window.
func (b *buffer[T]) logical(p int) int {
	return b.wrap(p - b.start)
}

func (b *buffer[T]) get(i int) T {
	checkIndex(i, b.count)
	return b.slots[b.physical(i)]
}

func (b *buffer[T]) set(i int, t T) {
	checkIndex(i, b.count)
	b.slots[b.physical(i)] = t
}

// at and put skip the bounds check. Callers guarantee the index lies in the
// ring.
func (b *buffer[T]) at(i int) T     { return b.slots[b.physical(i)] }
func (b *buffer[T]) put(i int, t T) { b.slots[b.physical(i)] = t }

func (b *buffer[T]) appendAtEnd(t T) {
	if b.full() {
		panic(errors.AssertionFailedf("deque: append to a full buffer of capacity %d", len(b.slots)))
	}
	b.slots[b.physical(b.count)] = t
	b.count++
}

func (b *buffer[T]) prependAtFront(t T) {
	if b.full() {
		panic(errors.AssertionFailedf("deque: prepend to a full buffer of capacity %d", len(b.slots)))
	}
	b.start = b.wrap(b.start - 1)
	b.slots[b.start] = t
	b.count++
}

// clear zeroes the slots of logical indexes [lo, hi).
func (b *buffer[T]) clear(lo, hi int) {
	var zero T
	for i := lo; i < hi; i++ {
		b.slots[b.physical(i)] = zero
	}
}

// segments returns the live window as two contiguous slices, in logical
// order. The second one is only non-empty when the window wraps.
func (b *buffer[T]) segments() (a, c []T) {
	if b == nil || b.count == 0 {
		return nil, nil
	}
	end := b.start + b.count
	if end <= len(b.slots) {
		return b.slots[b.start:end], nil
	}
	return b.slots[b.start:], b.slots[:end-len(b.slots)]
}

// resized returns an exclusive copy of b with the given capacity, holding the
// live window in logical order from slot 0. b itself is left untouched.
func (b *buffer[T]) resized(newCap int) *buffer[T] {
	if newCap < b.count {
		panic(errors.AssertionFailedf("deque: capacity %d cannot hold %d elements", newCap, b.count))
	}
	nb := newBuffer[T](newCap)
	s1, s2 := b.segments()
	n := copy(nb.slots, s1)
	copy(nb.slots[n:], s2)
	nb.count = b.count
	return nb
}

// retain and release track the handles bound to b.
func (b *buffer[T]) retain()        { b.refs.Add(1) }
func (b *buffer[T]) release()       { b.refs.Add(-1) }
func (b *buffer[T]) isUnique() bool { return b.refs.Load() == 1 }
