package deque

import "github.com/cockroachdb/errors"

// openGap makes room for k elements at logical index, shifting whichever
// side of index is shorter. On return the slots [index, index+k) are free
// for the caller to fill and count already includes them. The buffer must
// have room for k more elements.
func (b *buffer[T]) openGap(index, k int) {
	if b.count+k > len(b.slots) {
		panic(errors.AssertionFailedf("deque: gap of %d does not fit %d/%d", k, b.count, len(b.slots)))
	}
	if k == 0 {
		return
	}
	if index < b.count-index {
		// Move [0, index) down to [-k, index-k). Ascending order never
		// overwrites an element before it is moved.
		for i := 0; i < index; i++ {
			b.put(i-k, b.at(i))
		}
		b.start = b.wrap(b.start - k)
	} else {
		// Move [index, count) up to [index+k, count+k), descending.
		for i := b.count - 1; i >= index; i-- {
			b.put(i+k, b.at(i))
		}
	}
	b.count += k
}

// closeGap removes the logical range [lo, hi), shifting whichever remaining
// side is shorter into it. Every slot leaving the live window is zeroed.
func (b *buffer[T]) closeGap(lo, hi int) {
	n := hi - lo
	if n == 0 {
		return
	}
	b.clear(lo, hi)
	if lo <= b.count-hi {
		// Move [0, lo) up to [n, lo+n), descending. [0, n) ends up dead.
		for i := lo - 1; i >= 0; i-- {
			b.put(i+n, b.at(i))
		}
		b.clear(0, min(n, lo))
		b.start = b.wrap(b.start + n)
	} else {
		// Move [hi, count) down to [lo, count-n), ascending. [count-n, count)
		// ends up dead.
		for i := hi; i < b.count; i++ {
			b.put(i-n, b.at(i))
		}
		b.clear(max(b.count-n, hi), b.count)
	}
	b.count -= n
}
