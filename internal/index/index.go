// Package index implements the cursor arithmetic of a fixed-capacity ring.
//
// Head and tail are monotonically increasing uint64 counters, not wrapped
// storage indices. Occupancy is the unsigned difference tail-head, which
// stays correct even after the counters wrap around their own numeric range,
// and the head==tail state is unambiguously empty. Physical offsets are
// derived from the counters on every access and never stored.
//
// Power-of-two capacities divide 2^64, so free-running counters mask to
// correct offsets across the numeric wrap. Other capacities do not; for
// those, both counters are periodically reduced by the same multiple of the
// capacity, which changes neither the occupancy nor any physical offset but
// keeps the counters far from the wrap point.
package index

import "errors"

// ErrFull is returned on a write reservation when no slot is free.
// ErrEmpty is returned on a read reservation when no slot is occupied.
// ErrOutOfRange is returned when an offset or count exceeds the occupied
// (or free) region.
var (
	ErrFull       = errors.New("ring buffer full")
	ErrEmpty      = errors.New("ring buffer empty")
	ErrOutOfRange = errors.New("ring buffer index out of range")
)

// Engine tracks the read and write cursors of a ring of a fixed capacity.
// Not thread-safe.
type Engine struct {
	head uint64 // next read position
	tail uint64 // next write position

	capacity uint64
	mask     uint64 // capacity-1 when capacity is a power of two, else 0

	overwrite bool // full writes evict the oldest element
}

// New creates an engine for the given capacity. When overwrite is set, write
// reservations on a full ring evict the oldest element instead of failing.
//
// Capacity must be at least 1; public constructors validate this before the
// engine is built.
func New(capacity int, overwrite bool) Engine {
	if capacity < 1 {
		panic(errors.New("capacity must be greater than or equal to 1"))
	}
	e := Engine{
		capacity:  uint64(capacity),
		overwrite: overwrite,
	}
	if capacity&(capacity-1) == 0 {
		e.mask = uint64(capacity - 1)
	}
	return e
}

// Cap returns the fixed capacity.
func (e *Engine) Cap() int { return int(e.capacity) }

// Len returns the current occupancy.
func (e *Engine) Len() int { return int(e.tail - e.head) }

// Empty reports whether no slot is occupied.
func (e *Engine) Empty() bool { return e.head == e.tail }

// Full reports whether every slot is occupied.
func (e *Engine) Full() bool { return e.tail-e.head == e.capacity }

// Overwrite reports whether full writes evict the oldest element.
func (e *Engine) Overwrite() bool { return e.overwrite }

// Offset converts a logical counter to a physical storage offset.
func (e *Engine) Offset(counter uint64) int {
	if e.mask != 0 {
		return int(counter & e.mask)
	}
	return int(counter % e.capacity)
}

// HeadOffset returns the physical offset of the oldest occupied slot.
// Meaningless when the ring is empty.
func (e *Engine) HeadOffset() int { return e.Offset(e.head) }

// TailOffset returns the physical offset of the next free slot.
// Meaningless when the ring is full.
func (e *Engine) TailOffset() int { return e.Offset(e.tail) }

// Snapshot returns the head counter and occupancy at the time of the call,
// for iteration that must not observe later cursor movement.
func (e *Engine) Snapshot() (head uint64, n int) {
	return e.head, e.Len()
}

// normalize reduces both counters by the same multiple of the capacity,
// bringing the head into [0, capacity). Only needed when the capacity does
// not divide 2^64, i.e. is not a power of two. Offsets and occupancy are
// unchanged.
func (e *Engine) normalize() {
	if e.mask != 0 || e.head < e.capacity {
		return
	}
	n := e.head / e.capacity * e.capacity
	e.head -= n
	e.tail -= n
}

// ReserveWrite allocates the slot at tail and returns its physical offset.
//
// On a full ring it fails with ErrFull, unless overwrite is enabled, in
// which case the head advances first, dropping the oldest element, and the
// freed slot is allocated. A failed reservation moves no cursor.
func (e *Engine) ReserveWrite() (offset int, err error) {
	e.normalize()
	if e.Full() {
		if !e.overwrite {
			return 0, ErrFull
		}
		e.head++
	}
	offset = e.Offset(e.tail)
	e.tail++
	return offset, nil
}

// ReserveRead releases the slot at head and returns its physical offset.
// Fails with ErrEmpty on an empty ring, moving no cursor.
func (e *Engine) ReserveRead() (offset int, err error) {
	e.normalize()
	if e.Empty() {
		return 0, ErrEmpty
	}
	offset = e.Offset(e.head)
	e.head++
	return offset, nil
}

// PeekOffset returns the physical offset of the n-th occupied slot from the
// front without moving the head. Fails with ErrOutOfRange when n is negative
// or at least the occupancy.
func (e *Engine) PeekOffset(n int) (int, error) {
	if n < 0 || n >= e.Len() {
		return 0, ErrOutOfRange
	}
	return e.Offset(e.head + uint64(n)), nil
}

// Advance moves the head forward by n slots, releasing them. Fails with
// ErrOutOfRange when n is negative or exceeds the occupancy.
func (e *Engine) Advance(n int) error {
	if n < 0 || n > e.Len() {
		return ErrOutOfRange
	}
	e.normalize()
	e.head += uint64(n)
	return nil
}

// Commit moves the tail forward by n slots, occupying them. Fails with
// ErrOutOfRange when n is negative or exceeds the free slot count.
func (e *Engine) Commit(n int) error {
	if n < 0 || n > e.Cap()-e.Len() {
		return ErrOutOfRange
	}
	e.normalize()
	e.tail += uint64(n)
	return nil
}

// Reset empties the ring. The counters stay monotonic: the head catches up
// to the tail rather than both rewinding to zero.
func (e *Engine) Reset() {
	e.head = e.tail
}
