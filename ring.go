// Package ring implements a fixed-capacity circular buffer over pluggable
// storage backends.
//
// A Buffer composes an index engine (monotonic read/write cursors) with a
// storage backend (heap-allocated, inline array, or borrowed caller memory).
// The backend is a type parameter, so each combination compiles to
// specialized code with no interface dispatch on the access path. No
// operation allocates after construction except the ones documented as
// returning a copy.
//
// A Buffer is not safe for concurrent use.
package ring

import (
	"github.com/qntx/ring/internal/index"
	"github.com/qntx/ring/storage"
)

// Buffer is a fixed-capacity FIFO ring over the storage backend S.
//
// Pushes write at the tail, pops read at the head, and both wrap around the
// end of the backing block. The full-buffer behavior is selected at
// construction with WithPolicy.
type Buffer[T any, S storage.Storage[T]] struct {
	store  S
	idx    index.Engine
	policy Policy
}

// SliceBuffer is a Buffer backed by heap-allocated storage.
type SliceBuffer[T any] = Buffer[T, *storage.Slice[T]]

// ArrayBuffer is a Buffer backed by an inline array of type A = [N]T.
type ArrayBuffer[T any, A any] = Buffer[T, *storage.Array[T, A]]

// ExternalBuffer is a Buffer borrowing caller-owned storage.
type ExternalBuffer[T any] = Buffer[T, *storage.External[T]]

// New creates a heap-backed buffer with the given capacity. The block is
// allocated once, here. Returns ErrInvalidCapacity when capacity is below 1.
func New[T any](capacity int, opts ...Option) (*SliceBuffer[T], error) {
	s, err := storage.NewSlice[T](capacity)
	if err != nil {
		return nil, err
	}
	return NewWithStorage[T](s, opts...)
}

// NewFromArray creates a buffer whose storage is an array value of type
// A = [N]T embedded in the buffer's storage struct; the capacity is fixed at
// compile time by the array type. Returns ErrInvalidCapacity when A is not
// a non-empty array of T.
func NewFromArray[T any, A any](opts ...Option) (*ArrayBuffer[T, A], error) {
	s, err := storage.NewArray[T, A]()
	if err != nil {
		return nil, err
	}
	return NewWithStorage[T](s, opts...)
}

// NewFromSlice creates a buffer borrowing the first capacity slots of
// block. The buffer never reallocates or retains the block beyond its own
// lifetime; the caller must not touch the borrowed region while the buffer
// is in use. Returns ErrInvalidCapacity when capacity is below 1 and
// ErrInsufficientStorage when block is shorter than capacity.
func NewFromSlice[T any](block []T, capacity int, opts ...Option) (*ExternalBuffer[T], error) {
	s, err := storage.NewExternal(block, capacity)
	if err != nil {
		return nil, err
	}
	return NewWithStorage[T](s, opts...)
}

// NewWithStorage creates a buffer over any storage backend.
// Returns ErrInvalidCapacity when the backend reports a capacity below 1.
func NewWithStorage[T any, S storage.Storage[T]](s S, opts ...Option) (*Buffer[T, S], error) {
	if s.Capacity() < 1 {
		return nil, ErrInvalidCapacity
	}
	cfg := config{policy: DefaultPolicy}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Buffer[T, S]{
		store:  s,
		idx:    index.New(s.Capacity(), cfg.policy == OverwriteOldest),
		policy: cfg.policy,
	}, nil
}

// Cap returns the fixed capacity.
func (b *Buffer[T, S]) Cap() int { return b.idx.Cap() }

// Len returns the number of elements currently held.
func (b *Buffer[T, S]) Len() int { return b.idx.Len() }

// IsEmpty reports whether no element is held.
func (b *Buffer[T, S]) IsEmpty() bool { return b.idx.Empty() }

// IsFull reports whether every slot is occupied.
func (b *Buffer[T, S]) IsFull() bool { return b.idx.Full() }

// Policy returns the push behavior selected at construction.
func (b *Buffer[T, S]) Policy() Policy { return b.policy }

// Push appends v. On a full buffer it fails with ErrFull under Reject, or
// drops the oldest element under OverwriteOldest. A failed push writes
// nothing.
func (b *Buffer[T, S]) Push(v T) error {
	off, err := b.idx.ReserveWrite()
	if err != nil {
		return err
	}
	*b.store.Slot(off) = v
	return nil
}

// PushEvict appends v and returns the element it displaced, if any. Only a
// full buffer under OverwriteOldest displaces one. Under Reject a full
// buffer rejects the push and returns the zero value with ok false, the
// same as a push that displaced nothing; use Push where rejection must be
// distinguished.
func (b *Buffer[T, S]) PushEvict(v T) (evicted T, ok bool) {
	if b.idx.Full() && b.idx.Overwrite() {
		evicted = *b.store.Slot(b.idx.HeadOffset())
		ok = true
	}
	if err := b.Push(v); err != nil {
		var zero T
		return zero, false
	}
	return evicted, ok
}

// Pop removes and returns the oldest element.
// Fails with ErrEmpty on an empty buffer, removing nothing.
func (b *Buffer[T, S]) Pop() (T, error) {
	var zero T
	off, err := b.idx.ReserveRead()
	if err != nil {
		return zero, err
	}
	slot := b.store.Slot(off)
	v := *slot
	*slot = zero // release the slot's reference
	return v, nil
}

// Peek returns the n-th element from the front without removing it.
// Fails with ErrOutOfRange when n is negative or at least Len.
func (b *Buffer[T, S]) Peek(n int) (T, error) {
	off, err := b.idx.PeekOffset(n)
	if err != nil {
		var zero T
		return zero, err
	}
	return *b.store.Slot(off), nil
}

// Front returns the oldest element without removing it.
// Fails with ErrEmpty on an empty buffer.
func (b *Buffer[T, S]) Front() (T, error) {
	v, err := b.Peek(0)
	if err != nil {
		var zero T
		return zero, ErrEmpty
	}
	return v, nil
}

// Clear removes all elements. Occupied slots are zeroed so the buffer
// releases its references; the storage block itself is kept.
func (b *Buffer[T, S]) Clear() {
	first, second := b.Views()
	clear(first)
	clear(second)
	b.idx.Reset()
}

// PushSlice appends the elements of values in order and returns the count
// accepted. Under Reject it accepts as many as fit, in order from the front
// of values; the remainder is not written. Under OverwriteOldest it accepts
// all of them, evicting oldest elements as needed; when values is longer
// than the capacity only its last Cap elements survive.
func (b *Buffer[T, S]) PushSlice(values []T) int {
	n := len(values)
	if n == 0 {
		return 0
	}

	if b.idx.Overwrite() {
		if n >= b.Cap() {
			// Every slot gets overwritten; current contents are dropped
			// wholesale.
			b.idx.Reset()
			values = values[n-b.Cap():]
		} else if evict := n - b.free(); evict > 0 {
			// The freed slots become part of the write target below.
			_ = b.idx.Advance(evict)
		}
	}

	k := min(len(values), b.free())
	if k == 0 {
		return 0
	}
	first, second := b.store.Regions(b.idx.TailOffset(), k)
	m := copy(first, values)
	copy(second, values[m:])
	_ = b.idx.Commit(k)
	if b.idx.Overwrite() {
		return n
	}
	return k
}

// PopInto removes up to len(dst) elements into dst, oldest first, and
// returns the count transferred. An empty buffer transfers zero.
func (b *Buffer[T, S]) PopInto(dst []T) int {
	n := min(len(dst), b.Len())
	if n == 0 {
		return 0
	}
	first, second := b.store.Regions(b.idx.HeadOffset(), n)
	m := copy(dst, first)
	copy(dst[m:], second)
	clear(first)
	clear(second)
	_ = b.idx.Advance(n)
	return n
}

// PopSlice removes up to n elements and returns them in a freshly allocated
// slice, oldest first. Returns nil when the buffer is empty or n is not
// positive.
func (b *Buffer[T, S]) PopSlice(n int) []T {
	n = min(n, b.Len())
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	b.PopInto(out)
	return out
}

// Views returns the occupied region as up to two contiguous slices in
// logical order, oldest first, without copying. The slices stay valid until
// the next mutating operation. Mutating their elements mutates the buffer.
func (b *Buffer[T, S]) Views() (first, second []T) {
	return b.store.Regions(b.idx.HeadOffset(), b.Len())
}

// FreeViews returns the free region as up to two contiguous writable slices
// in write order. Fill them front to back, then CommitWrite the count
// written. The slices stay valid until the next mutating operation.
func (b *Buffer[T, S]) FreeViews() (first, second []T) {
	return b.store.Regions(b.idx.TailOffset(), b.free())
}

// CommitWrite marks n slots, previously filled through FreeViews, as
// occupied. Fails with ErrOutOfRange when n is negative or exceeds the free
// slot count, committing nothing.
func (b *Buffer[T, S]) CommitWrite(n int) error {
	return b.idx.Commit(n)
}

// DiscardRead drops the n oldest elements without reading them out. Fails
// with ErrOutOfRange when n is negative or exceeds Len, dropping nothing.
func (b *Buffer[T, S]) DiscardRead(n int) error {
	if n < 0 || n > b.Len() {
		return ErrOutOfRange
	}
	first, second := b.store.Regions(b.idx.HeadOffset(), n)
	clear(first)
	clear(second)
	return b.idx.Advance(n)
}

// ToSlice returns the occupied elements, oldest first, in a freshly
// allocated flattened copy.
func (b *Buffer[T, S]) ToSlice() []T {
	out := make([]T, b.Len())
	first, second := b.Views()
	m := copy(out, first)
	copy(out[m:], second)
	return out
}

func (b *Buffer[T, S]) free() int { return b.Cap() - b.Len() }
