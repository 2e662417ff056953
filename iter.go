package deque

import "iter"

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// Every traversal below walks logical indexes from the front and compares
// against the current length on each step, reading through the Deque's
// current buffer. Elements pushed to the back during a traversal are visited
// by that same traversal, and a reallocation caused by the loop body never
// invalidates it.

// ForEach calls f in order for every element in the Deque, or until the first
// call that returns false.
func (d *Deque[T]) ForEach(f func(T) bool) {
	for i := 0; i < d.Len(); i++ {
		if !f(d.buf.at(i)) {
			return
		}
	}
}

// All returns an iterator over index-value pairs in order. It has the same
// semantics as slices.All. If you don't need indexes, use Iter instead.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.buf.at(i)) {
				return
			}
		}
	}
}

// Iter returns an iterator over values only in order. If you need indexes,
// use All instead.
func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		d.ForEach(yield)
	}
}

// Backward returns an iterator over index-value pairs from back to front.
// If the loop body shrinks the Deque, the walk resumes from the new back.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.Len() - 1; i >= 0; i-- {
			if n := d.Len(); i >= n {
				i = n - 1
				if i < 0 {
					return
				}
			}
			if !yield(i, d.buf.at(i)) {
				return
			}
		}
	}
}
