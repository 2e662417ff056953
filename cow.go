package deque

// Clone returns a new Deque with the same contents as d. The two share one
// buffer until either of them is mutated, at which point the mutated one
// copies its elements into a buffer of its own. Cloning is O(1).
//
// Assigning a *Deque to another variable does not copy it: both variables
// point to the same handle. Use Clone to get an independent value.
func (d *Deque[T]) Clone() *Deque[T] {
	if d == nil || d.buf == nil {
		return &Deque[T]{}
	}
	d.buf.retain()
	return &Deque[T]{buf: d.buf}
}

// IsUnique reports whether d is the only handle bound to its buffer, meaning
// the next mutation will not copy. A Clone that was discarded without being
// mutated still counts until d's next mutation. A nil Deque is unique.
func (d *Deque[T]) IsUnique() bool {
	return d == nil || d.buf == nil || d.buf.isUnique()
}

// ensureUnique returns d's buffer after making sure d is its only handle and
// that it can hold minCapacity elements. It copies when the buffer is shared
// and grows when it is too small, doing both with a single copy.
func (d *Deque[T]) ensureUnique(minCapacity int) *buffer[T] {
	b := d.buf
	if b == nil {
		var capacity int
		if minCapacity > 0 {
			capacity = grownCapacity(0, minCapacity)
		}
		b = newBuffer[T](capacity)
		d.buf = b
		return b
	}

	if b.isUnique() && b.capacity() >= minCapacity {
		return b
	}

	newCap := b.capacity()
	if newCap < minCapacity {
		newCap = grownCapacity(newCap, minCapacity)
	}
	nb := b.resized(newCap)
	d.rebind(nb)
	return nb
}

// rebind points d to nb, dropping d's reference to its current buffer.
func (d *Deque[T]) rebind(nb *buffer[T]) {
	if d.buf != nil {
		d.buf.release()
	}
	d.buf = nb
}
