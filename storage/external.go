package storage

// External is storage borrowed from the caller. The backend uses exactly
// block[:capacity], never reallocates, and never writes past the declared
// capacity. The caller must not touch that region for the lifetime of the
// buffer built on it.
type External[T any] struct {
	slots []T
}

// NewExternal borrows the first capacity slots of block.
// Returns ErrInvalidCapacity when capacity is below 1 and
// ErrInsufficientStorage when block holds fewer than capacity slots.
func NewExternal[T any](block []T, capacity int) (*External[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if len(block) < capacity {
		return nil, ErrInsufficientStorage
	}
	return &External[T]{slots: block[:capacity:capacity]}, nil
}

// Capacity returns the declared number of slots.
func (s *External[T]) Capacity() int { return len(s.slots) }

// Slot returns an exclusive reference to the slot at the given offset.
func (s *External[T]) Slot(offset int) *T { return &s.slots[offset] }

// Regions returns up to two contiguous runs covering length slots starting
// at offset, wrapping past the end of the block.
func (s *External[T]) Regions(offset, length int) (first, second []T) {
	return cut(s.slots, offset, length)
}
