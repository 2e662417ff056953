package deque

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Deque is a double-ended queue that can be used for either LIFO or FIFO
// ordering, or something in between, and also as an indexable sequence with
// cheap insertion and removal anywhere: the shorter side of the insertion
// point is the one that moves.
//
// The zero value is an empty Deque ready to use. Deques are handles to a
// shared ring buffer: Clone is O(1) and a cloned Deque copies its elements
// only when it, or the Deque it was cloned from, is first mutated. Copying the
// struct itself (e := *d) is not a Clone: both values then write to the same
// buffer without either of them copying. A single Deque must not be mutated
// from multiple goroutines without external synchronization, but Deques
// sharing a buffer may be read concurrently.
//
// The buffer grows by GrowthFactor when an insertion overflows it. It never
// shrinks unless asked to, through RemoveAll(false) or Shrink.
type Deque[T any] struct {
	buf *buffer[T]
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// MakeDeque returns an empty Deque. No buffer is allocated until the first
// insertion.
func MakeDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// MakeDequeWithCapacity returns an empty Deque able to hold capacity elements
// before reallocating. Returns an error if passed a negative value.
func MakeDequeWithCapacity[T any](capacity int) (*Deque[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Deque[T]{buf: newBuffer[T](capacity)}, nil
}

// CopySliceToDeque allocates a buffer of exactly len(s) and copies every
// element of the slice to the Deque. Memory is not shared with s.
func CopySliceToDeque[T any](s []T) *Deque[T] {
	b := newBuffer[T](len(s))
	b.count = copy(b.slots, s)
	return &Deque[T]{buf: b}
}

// Collect collects the values from seq into a new Deque, in order.
func Collect[T any](seq iter.Seq[T]) *Deque[T] {
	d := MakeDeque[T]()
	for t := range seq {
		d.PushBack(t)
	}
	return d
}

// Repeat returns a Deque holding n copies of t. It panics if n is negative.
func Repeat[T any](t T, n int) *Deque[T] {
	if n < 0 {
		panic(errors.Wrapf(ErrNegativeCapacity, "deque: cannot repeat %d times", n))
	}
	b := newBuffer[T](n)
	for i := range b.slots {
		b.slots[i] = t
	}
	b.count = n
	return &Deque[T]{buf: b}
}

/*****************************************************************************
 * DEQUE API
 *****************************************************************************/

// Len returns the number of elements in the Deque or 0 if nil.
func (d *Deque[T]) Len() int {
	if d == nil || d.buf == nil {
		return 0
	}
	return d.buf.len()
}

// Empty returns whether the Deque is empty.
func (d *Deque[T]) Empty() bool { return d.Len() == 0 }

// PushBack takes in a variable number of arguments and puts them at the back
// of the Deque. Use PushBack and PopFront for FIFO ordering, or PushBack and
// PopBack for LIFO ordering.
//
// PushBack reallocates at most once, no matter how many arguments. The last
// argument is the new back of the Deque.
func (d *Deque[T]) PushBack(ts ...T) {
	if len(ts) == 0 {
		return
	}
	b := d.ensureUnique(d.Len() + len(ts))
	for _, t := range ts {
		b.appendAtEnd(t)
	}
}

// AppendSeq puts every value of seq at the back of the Deque. The sequence is
// drained before the Deque is touched, so seq may read from d itself.
func (d *Deque[T]) AppendSeq(seq iter.Seq[T]) {
	d.PushBack(slices.Collect(seq)...)
}

// PushFront takes in a variable number of arguments and puts them at the front
// of the Deque.
//
// PushFront reallocates at most once, no matter how many arguments. The last
// argument is the new front of the Deque.
func (d *Deque[T]) PushFront(ts ...T) {
	if len(ts) == 0 {
		return
	}
	b := d.ensureUnique(d.Len() + len(ts))
	for _, t := range ts {
		b.prependAtFront(t)
	}
}

// Front returns the first element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) Front() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf.at(0), true
}

// Back returns the last element in the Deque. If the Deque is empty, it
// returns false.
func (d *Deque[T]) Back() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.buf.at(d.buf.count - 1), true
}

// PopFront removes the first element in the Deque and returns it. If it's
// empty, returns false instead of panicking. The vacated slot is zeroed.
func (d *Deque[T]) PopFront() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.RemoveFirst(), true
}

// PopBack removes the last element in the Deque and returns it. If it's empty,
// returns false instead of panicking. The vacated slot is zeroed.
func (d *Deque[T]) PopBack() (t T, ok bool) {
	if d.Empty() {
		return
	}
	return d.RemoveLast(), true
}

// RemoveFirst removes the first element in the Deque and returns it. Panics
// with ErrUnderflow if the Deque is empty.
func (d *Deque[T]) RemoveFirst() T {
	checkRemove(1, d.Len())
	b := d.ensureUnique(0)
	t := b.at(0)
	b.closeGap(0, 1)
	return t
}

// RemoveLast removes the last element in the Deque and returns it. Panics
// with ErrUnderflow if the Deque is empty.
func (d *Deque[T]) RemoveLast() T {
	n := d.Len()
	checkRemove(1, n)
	b := d.ensureUnique(0)
	t := b.at(n - 1)
	b.closeGap(n-1, n)
	return t
}

// RemoveFirstN removes the n first elements of the Deque in O(n). Panics with
// ErrUnderflow if n is negative or the Deque has fewer than n elements.
func (d *Deque[T]) RemoveFirstN(n int) {
	checkRemove(n, d.Len())
	if n == 0 {
		return
	}
	d.ensureUnique(0).closeGap(0, n)
}

// RemoveLastN removes the n last elements of the Deque in O(n). Panics with
// ErrUnderflow if n is negative or the Deque has fewer than n elements.
func (d *Deque[T]) RemoveLastN(n int) {
	l := d.Len()
	checkRemove(n, l)
	if n == 0 {
		return
	}
	d.ensureUnique(0).closeGap(l-n, l)
}

// RemoveAll empties the Deque. With keepCapacity it keeps its buffer for
// reuse, zeroing every element; otherwise the buffer is dropped and the
// Deque goes back to zero capacity.
func (d *Deque[T]) RemoveAll(keepCapacity bool) {
	b := d.buf
	switch {
	case b == nil:
	case !keepCapacity:
		d.rebind(nil)
	case b.isUnique():
		b.clear(0, b.count)
		b.count = 0
	default:
		d.rebind(newBuffer[T](b.capacity()))
	}
}

/*****************************************************************************
 * SLICE API
 *****************************************************************************/

// segments returns the live elements as at most two slices, nil for a nil
// Deque.
func (d *Deque[T]) segments() (a, b []T) {
	if d == nil {
		return nil, nil
	}
	return d.buf.segments()
}

// Cap returns the current Deque capacity.
func (d *Deque[T]) Cap() int {
	if d == nil || d.buf == nil {
		return 0
	}
	return d.buf.capacity()
}

// Reserve ensures the Deque can hold at least minCapacity elements without
// reallocating. It never reduces capacity and never changes the contents. It
// returns an error if minCapacity is negative.
func (d *Deque[T]) Reserve(minCapacity int) error {
	if minCapacity < 0 {
		return ErrNegativeCapacity
	}
	if minCapacity > d.Cap() {
		d.ensureUnique(minCapacity)
	}
	return nil
}

// Shrink reallocates the underlying buffer to the smallest size able to hold
// the current elements and returns the new capacity.
func (d *Deque[T]) Shrink() int {
	if d.buf == nil {
		return 0
	}
	newCap := shrunkCapacity(d.buf.count)
	if newCap != d.buf.capacity() {
		d.rebind(d.buf.resized(newCap))
	}
	return newCap
}

// At indexes into the i-th position in the Deque. Panics with
// ErrIndexOutOfRange if out of bounds.
func (d *Deque[T]) At(i int) T {
	checkIndex(i, d.Len())
	return d.buf.at(i)
}

// Set writes t to the i-th position in the Deque. Panics with
// ErrIndexOutOfRange if out of bounds.
func (d *Deque[T]) Set(i int, t T) {
	checkIndex(i, d.Len())
	d.ensureUnique(0).set(i, t)
}

// Swap swaps the elements in the i-th and j-th indexes. Panics if out of
// bounds.
func (d *Deque[T]) Swap(i, j int) {
	n := d.Len()
	checkIndex(i, n)
	checkIndex(j, n)
	b := d.ensureUnique(0)
	a, c := b.at(i), b.at(j)
	b.put(i, c)
	b.put(j, a)
}

// Insert puts ts at index i, so that ts[0] ends up at index i and the former
// element at i follows the last of ts. Only the shorter side of i moves, so
// Insert costs O(min(i, Len()-i) + len(ts)). Panics with ErrIndexOutOfRange
// if i is outside [0, Len()].
func (d *Deque[T]) Insert(i int, ts ...T) {
	checkInsertIndex(i, d.Len())
	if len(ts) == 0 {
		return
	}
	b := d.ensureUnique(d.Len() + len(ts))
	b.openGap(i, len(ts))
	for j, t := range ts {
		b.put(i+j, t)
	}
}

// InsertSeq inserts the values of seq at index i, in order. The sequence is
// drained before the Deque is touched.
func (d *Deque[T]) InsertSeq(i int, seq iter.Seq[T]) {
	checkInsertIndex(i, d.Len())
	d.Insert(i, slices.Collect(seq)...)
}

// Remove removes the element at index i and returns it. Panics with
// ErrIndexOutOfRange if out of bounds.
func (d *Deque[T]) Remove(i int) T {
	checkIndex(i, d.Len())
	b := d.ensureUnique(0)
	t := b.at(i)
	b.closeGap(i, i+1)
	return t
}

// RemoveRange removes the elements in [lo, hi), keeping the order of the
// rest. Only the shorter remaining side moves. Panics with ErrRangeInvalid if
// lo > hi or either bound is outside [0, Len()].
func (d *Deque[T]) RemoveRange(lo, hi int) {
	checkRange(lo, hi, d.Len())
	if lo == hi {
		return
	}
	d.ensureUnique(0).closeGap(lo, hi)
}

// Replace replaces the elements in [lo, hi) with ts. It behaves like
// RemoveRange(lo, hi) followed by Insert(lo, ts...), but copies or grows the
// buffer at most once and only moves the elements that must move.
func (d *Deque[T]) Replace(lo, hi int, ts ...T) {
	n := d.Len()
	checkRange(lo, hi, n)
	removed, k := hi-lo, len(ts)
	if removed == 0 && k == 0 {
		return
	}
	b := d.ensureUnique(n - removed + k)
	m := min(removed, k)
	for j := range m {
		b.put(lo+j, ts[j])
	}
	if removed > k {
		b.closeGap(lo+k, hi)
		return
	}
	b.openGap(hi, k-m)
	for j, t := range ts[m:] {
		b.put(hi+j, t)
	}
}

// MakeSliceCopy allocates a slice to hold every Deque element and copies them.
// Prefer passing a buffer to CopySlice for memory reuse.
func (d *Deque[T]) MakeSliceCopy() []T {
	s := make([]T, d.Len())
	d.CopySlice(0, s)
	return s
}

// MakeSliceIndexCopy allocates a slice and copies the contents from the start
// index (inclusive) to the end index (non-inclusive). This is regular slice
// semantics, except it's a copy, and doesn't share memory with the Deque.
// Panics with ErrRangeInvalid on invalid indexes.
func (d *Deque[T]) MakeSliceIndexCopy(start, end int) []T {
	checkRange(start, end, d.Len())
	s := make([]T, end-start)
	d.CopySlice(start, s)
	return s
}

// CopySlice has the same semantics as the copy() built-in function. It copies
// elements in the Deque starting at the start index up until the buffer is
// full or the Deque is over, whichever happens first.
//
// CopySlice returns the number of elements copied. Panics with
// ErrRangeInvalid if start is outside [0, Len()].
func (d *Deque[T]) CopySlice(start int, buf []T) int {
	checkRange(start, d.Len(), d.Len())
	s1, s2 := d.segments()
	L1 := len(s1)
	if start < L1 {
		result := copy(buf, s1[start:])
		if start+len(buf) > L1 {
			result += copy(buf[L1-start:], s2)
		}
		return result
	}
	return copy(buf, s2[start-L1:])
}
