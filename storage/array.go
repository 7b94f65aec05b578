package storage

import (
	"reflect"
	"unsafe"
)

// Array is inline storage with a compile-time capacity: the block is an
// array value of type A = [N]T embedded directly in the struct, so a
// buffer built on it involves no separate heap block.
type Array[T any, A any] struct {
	block    A
	capacity int
}

// NewArray creates inline storage whose capacity is the length of the array
// type A. A must be an array of T with at least one element; anything else
// fails with ErrInvalidCapacity. The check runs once, at construction.
func NewArray[T any, A any]() (*Array[T, A], error) {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array || at.Len() < 1 || at.Elem() != reflect.TypeFor[T]() {
		return nil, ErrInvalidCapacity
	}
	return &Array[T, A]{capacity: at.Len()}, nil
}

// Capacity returns the length of the embedded array.
func (s *Array[T, A]) Capacity() int { return s.capacity }

// Slot returns an exclusive reference to the slot at the given offset.
func (s *Array[T, A]) Slot(offset int) *T { return &s.slots()[offset] }

// Regions returns up to two contiguous runs covering length slots starting
// at offset, wrapping past the end of the block.
func (s *Array[T, A]) Regions(offset, length int) (first, second []T) {
	return cut(s.slots(), offset, length)
}

// slots views the embedded array as a slice. Construction verified that A
// is [capacity]T, so the element type and length line up.
func (s *Array[T, A]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&s.block)), s.capacity)
}
