// Package region computes the physical spans covering a logical range of a
// fixed-capacity circular block. A range that crosses the end of the block
// splits into two spans; one that does not needs only the first.
package region

// Span is a half-open range [Lo, Hi) of physical offsets.
type Span struct {
	Lo, Hi int
}

// Len returns the number of offsets covered by the span.
func (s Span) Len() int { return s.Hi - s.Lo }

// IsEmpty reports whether the span covers no offsets.
func (s Span) IsEmpty() bool { return s.Lo >= s.Hi }

// Split maps the logical range starting at physical offset start with the
// given length onto at most two physical spans, in logical order.
//
// The caller guarantees 0 <= start < capacity and 0 <= length <= capacity.
// A zero length yields two empty spans. A range of exactly capacity elements
// starting at a nonzero offset yields two non-empty spans.
func Split(start, length, capacity int) (first, second Span) {
	if length == 0 {
		return Span{Lo: start, Hi: start}, Span{}
	}
	n := capacity - start
	if length <= n {
		return Span{Lo: start, Hi: start + length}, Span{}
	}
	return Span{Lo: start, Hi: capacity}, Span{Lo: 0, Hi: length - n}
}
