package deque

import (
	"cmp"
	"iter"
	"slices"
)

// Map returns a new Deque holding f applied to every element of d, in order.
// It must not be a method, since methods cannot take type parameters.
func Map[T, U any](d *Deque[T], f func(T) U) *Deque[U] {
	out, _ := MakeDequeWithCapacity[U](d.Len())
	d.ForEach(func(t T) bool {
		out.PushBack(f(t))
		return true
	})
	return out
}

// FlatMap returns a new Deque holding, in order, every value of the sequences
// f returns for the elements of d.
func FlatMap[T, U any](d *Deque[T], f func(T) iter.Seq[U]) *Deque[U] {
	out := MakeDeque[U]()
	d.ForEach(func(t T) bool {
		for u := range f(t) {
			out.PushBack(u)
		}
		return true
	})
	return out
}

// Reduce folds the elements of d from front to back into an accumulator
// starting at init.
func Reduce[T, A any](d *Deque[T], init A, f func(A, T) A) A {
	acc := init
	d.ForEach(func(t T) bool {
		acc = f(acc, t)
		return true
	})
	return acc
}

// Filter returns a new Deque with the elements of d that satisfy keep, in
// order. d is left untouched.
func (d *Deque[T]) Filter(keep func(T) bool) *Deque[T] {
	out := MakeDeque[T]()
	d.ForEach(func(t T) bool {
		if keep(t) {
			out.PushBack(t)
		}
		return true
	})
	return out
}

// Contains returns whether the element is in the Deque. This must not be a
// method, otherwise Deque would be constrained to comparable elements. It has
// the same semantics as slices.Contains.
func Contains[T comparable](d *Deque[T], t T) bool {
	return Index(d, t) != -1
}

// ContainsFunc returns whether an element satisfying f is in the Deque. It has
// the same semantics as slices.ContainsFunc.
func (d *Deque[T]) ContainsFunc(f func(T) bool) bool {
	return d.IndexFunc(f) != -1
}

// Equal returns whether both Deques have the same length and the same elements
// in the same order. Two nil Deques are equal, and so are a nil and an empty
// Deque. This must not be a method, otherwise Deque would be constrained to
// comparable elements.
func Equal[T comparable](d1 *Deque[T], d2 *Deque[T]) bool {
	return d1.EqualFunc(d2, func(a, b T) bool { return a == b })
}

// EqualFunc returns whether both Deques have the same length and elements
// that are pairwise equal according to f, in the same order.
func (d1 *Deque[T]) EqualFunc(d2 *Deque[T], f func(T, T) bool) bool {
	n := d1.Len()
	if n != d2.Len() {
		return false
	}
	if n == 0 || d1.buf == d2.buf {
		return true
	}
	for i := range n {
		if !f(d1.buf.at(i), d2.buf.at(i)) {
			return false
		}
	}
	return true
}

// Index returns the index of the first ocurrence of t in the Deque or -1 if
// absent. It cannot be a method, otherwise Deque would be constrained to
// comparable elements only. Index has the same semantics as slices.Index.
func Index[T comparable](d *Deque[T], t T) int {
	return d.IndexFunc(func(u T) bool { return u == t })
}

// IndexFunc returns the index of the first element that satisfies f in the
// Deque or -1 if none do. IndexFunc has the same semantics as
// slices.IndexFunc.
func (d *Deque[T]) IndexFunc(f func(T) bool) int {
	s1, s2 := d.segments()
	if i := slices.IndexFunc(s1, f); i != -1 {
		return i
	}
	if i := slices.IndexFunc(s2, f); i != -1 {
		return i + len(s1)
	}
	return -1
}

// Max returns the maximum element in the Deque. It has the same semantics as
// slices.Max, so it panics on an empty Deque.
func Max[T cmp.Ordered](d *Deque[T]) T {
	return MaxFunc(d, cmp.Compare[T])
}

// MaxFunc returns the maximum element in the Deque according to cmp, the
// first one if several are maximal. It panics on an empty or nil Deque.
func MaxFunc[T any](d *Deque[T], cmp func(T, T) int) T {
	s1, s2 := d.segments()
	result := slices.MaxFunc(s1, cmp)
	// slices.MaxFunc panics on an empty slice, so handle this edge case.
	if len(s2) > 0 {
		if m := slices.MaxFunc(s2, cmp); cmp(m, result) > 0 {
			result = m
		}
	}
	return result
}

// Min returns the minimum element in the Deque. It has the same semantics as
// slices.Min, so it panics on an empty Deque.
func Min[T cmp.Ordered](d *Deque[T]) T {
	return MinFunc(d, cmp.Compare[T])
}

// MinFunc returns the minimum element in the Deque according to cmp, the
// first one if several are minimal. It panics on an empty or nil Deque.
func MinFunc[T any](d *Deque[T], cmp func(T, T) int) T {
	s1, s2 := d.segments()
	result := slices.MinFunc(s1, cmp)
	if len(s2) > 0 {
		if m := slices.MinFunc(s2, cmp); cmp(m, result) < 0 {
			result = m
		}
	}
	return result
}
