package deque

import "github.com/cockroachdb/errors"

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrIndexOutOfRange is the cause of the panic raised when an index falls
// outside the valid bound of an operation: [0, Len()) for access and removal,
// [0, Len()] for insertion.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrRangeInvalid is the cause of the panic raised when a range has its lower
// bound above its upper bound, or either bound outside [0, Len()].
var ErrRangeInvalid = errors.New("invalid range")

// ErrUnderflow is the cause of the panic raised when asked to remove more
// elements than the Deque holds.
var ErrUnderflow = errors.New("not enough elements to remove")

// ErrNegativeCapacity is returned when asking for a negative capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

/*****************************************************************************
 * FAULTS
 *****************************************************************************/

// Precondition violations are programming errors, so they panic. The panic
// value is an error wrapping one of the sentinels above, which lets a
// recovering caller match it with errors.Is.

func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(errors.Wrapf(ErrIndexOutOfRange, "deque: index %d out of bounds with length %d", i, n))
	}
}

func checkInsertIndex(i, n int) {
	if i < 0 || i > n {
		panic(errors.Wrapf(ErrIndexOutOfRange, "deque: insertion index %d out of bounds with length %d", i, n))
	}
}

func checkRange(lo, hi, n int) {
	if lo < 0 || hi > n || lo > hi {
		panic(errors.Wrapf(ErrRangeInvalid, "deque: range [%d, %d) with length %d", lo, hi, n))
	}
}

func checkRemove(k, n int) {
	if k < 0 || k > n {
		panic(errors.Wrapf(ErrUnderflow, "deque: cannot remove %d elements with length %d", k, n))
	}
}
