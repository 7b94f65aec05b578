package storage

import "github.com/qntx/ring/internal/region"

// Slice is heap-allocated storage. The block is allocated once, at
// construction, and never reallocated.
type Slice[T any] struct {
	slots []T
}

// NewSlice allocates storage for the given number of slots.
// Returns ErrInvalidCapacity when capacity is below 1.
func NewSlice[T any](capacity int) (*Slice[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Slice[T]{slots: make([]T, capacity)}, nil
}

// Capacity returns the fixed number of slots.
func (s *Slice[T]) Capacity() int { return len(s.slots) }

// Slot returns an exclusive reference to the slot at the given offset.
func (s *Slice[T]) Slot(offset int) *T { return &s.slots[offset] }

// Regions returns up to two contiguous runs covering length slots starting
// at offset, wrapping past the end of the block.
func (s *Slice[T]) Regions(offset, length int) (first, second []T) {
	return cut(s.slots, offset, length)
}

// cut slices a block according to the span arithmetic shared by all
// backends. Empty runs come back nil so the backend is never touched for a
// zero-length request.
func cut[T any](slots []T, offset, length int) (first, second []T) {
	a, b := region.Split(offset, length, len(slots))
	if !a.IsEmpty() {
		first = slots[a.Lo:a.Hi:a.Hi]
	}
	if !b.IsEmpty() {
		second = slots[b.Lo:b.Hi:b.Hi]
	}
	return first, second
}
