// Package storage provides the fixed-size slot blocks backing a ring buffer.
//
// A block is a contiguous run of exactly Capacity slots addressed by
// physical offset. Three backends are provided: Slice (heap-allocated at
// construction), Array (inline, compile-time capacity) and External
// (caller-owned, borrowed). None of them allocate after construction.
package storage

import "errors"

// ErrInvalidCapacity is returned when a backend is constructed with a
// capacity below 1.
// ErrInsufficientStorage is returned when a borrowed block is shorter than
// the declared capacity.
var (
	ErrInvalidCapacity     = errors.New("ring buffer capacity must be at least 1")
	ErrInsufficientStorage = errors.New("external storage smaller than declared capacity")
)

// Storage is a fixed-size block of slots addressed by physical offset.
//
// Callers guarantee offset < Capacity() on every access and
// length <= Capacity() on Regions. Regions returned for non-overlapping
// requests never alias each other.
type Storage[T any] interface {
	// Capacity returns the fixed number of slots.
	Capacity() int
	// Slot returns an exclusive reference to the slot at the given offset.
	Slot(offset int) *T
	// Regions returns up to two contiguous runs of slots covering length
	// slots starting at offset, wrapping past the end of the block. The
	// runs are returned in logical order; either may be empty.
	Regions(offset, length int) (first, second []T)
}
