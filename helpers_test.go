package deque

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// wrapped returns a Deque over a fresh buffer of the given capacity whose
// logical index 0 sits at slot start.
func wrapped[T any](values []T, capacity, start int) *Deque[T] {
	b := newBuffer[T](capacity)
	if capacity > 0 {
		b.start = start % capacity
	}
	for _, v := range values {
		b.appendAtEnd(v)
	}
	return &Deque[T]{buf: b}
}

// requireFault runs f and requires it to panic with an error wrapping target.
func requireFault(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}

// requireContents requires d to hold exactly want, in order.
func requireContents[T any](t *testing.T, want []T, d *Deque[T]) {
	t.Helper()
	got := d.MakeSliceCopy()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

// checkInvariants verifies the bookkeeping of d's buffer and that every slot
// outside the live window holds the zero value.
func checkInvariants[T comparable](t *testing.T, d *Deque[T]) {
	t.Helper()
	b := d.buf
	if b == nil {
		return
	}
	require.GreaterOrEqual(t, b.refs.Load(), int32(1))
	require.LessOrEqual(t, b.count, b.capacity())
	if b.capacity() == 0 {
		require.Zero(t, b.start)
		return
	}
	require.GreaterOrEqual(t, b.start, 0)
	require.Less(t, b.start, b.capacity())

	var zero T
	for p := range b.slots {
		if b.logical(p) >= b.count {
			require.Equal(t, zero, b.slots[p], "dead slot %d (start %d, count %d)", p, b.start, b.count)
		}
	}
}

func intRange(lo, hi int) []int {
	s := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		s = append(s, i)
	}
	return s
}
