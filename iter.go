package ring

import "iter"

// Iter returns a lazy sequence over the occupied elements, oldest first,
// without removing them.
//
// The head and tail are snapshotted when iteration begins: elements pushed
// from inside the loop body are not yielded, and pops from inside the loop
// do not shift the running sequence. The sequence is re-invocable: ranging
// over it again takes a fresh snapshot and restarts from what is then the
// oldest element.
func (b *Buffer[T, S]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, n := b.idx.Snapshot()
		for i := 0; i < n; i++ {
			if !yield(*b.store.Slot(b.idx.Offset(head + uint64(i)))) {
				return
			}
		}
	}
}

// All returns a lazy sequence over the occupied elements with their
// positions from the front, oldest first. Snapshot semantics match Iter.
func (b *Buffer[T, S]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		head, n := b.idx.Snapshot()
		for i := 0; i < n; i++ {
			if !yield(i, *b.store.Slot(b.idx.Offset(head+uint64(i)))) {
				return
			}
		}
	}
}

// Drain returns a lazy sequence that removes each element as it is yielded,
// oldest first. Breaking out of the loop leaves the buffer holding exactly
// the elements not yet yielded: each element is popped before its yield, so
// an abandoned drain has advanced the head only by the count consumed.
func (b *Buffer[T, S]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, err := b.Pop()
			if err != nil {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
