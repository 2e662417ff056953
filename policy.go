package deque

const (
	// GrowthFactor is the multiple of the current capacity a Deque grows to
	// when an insertion overflows its buffer.
	GrowthFactor = 2

	// MinCapacity is the smallest capacity a Deque allocates when it grows.
	// Explicit shrinking may go below it.
	MinCapacity = 4
)

// grownCapacity returns the capacity to allocate when a buffer of capacity
// current must hold at least required elements.
func grownCapacity(current, required int) int {
	return max(current*GrowthFactor, required, MinCapacity)
}

// shrunkCapacity returns the capacity to compact to when required elements
// remain.
func shrunkCapacity(required int) int {
	return required
}
