package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qntx/ring/internal/region"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		length   int
		capacity int
		first    region.Span
		second   region.Span
	}{
		{
			name:     "NoWrap",
			start:    1,
			length:   3,
			capacity: 8,
			first:    region.Span{Lo: 1, Hi: 4},
		},
		{
			name:     "ExactToEnd",
			start:    5,
			length:   3,
			capacity: 8,
			first:    region.Span{Lo: 5, Hi: 8},
		},
		{
			name:     "Wrap",
			start:    6,
			length:   4,
			capacity: 8,
			first:    region.Span{Lo: 6, Hi: 8},
			second:   region.Span{Lo: 0, Hi: 2},
		},
		{
			name:     "ZeroLength",
			start:    3,
			length:   0,
			capacity: 8,
			first:    region.Span{Lo: 3, Hi: 3},
		},
		{
			name:     "FullCapacityFromZero",
			start:    0,
			length:   8,
			capacity: 8,
			first:    region.Span{Lo: 0, Hi: 8},
		},
		{
			name:     "FullCapacityFromNonzero",
			start:    3,
			length:   8,
			capacity: 8,
			first:    region.Span{Lo: 3, Hi: 8},
			second:   region.Span{Lo: 0, Hi: 3},
		},
		{
			name:     "SingleSlotCapacity",
			start:    0,
			length:   1,
			capacity: 1,
			first:    region.Span{Lo: 0, Hi: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := region.Split(tt.start, tt.length, tt.capacity)
			assert.Equal(t, tt.first, first, "first span")
			assert.Equal(t, tt.second, second, "second span")
			assert.Equal(t, tt.length, first.Len()+second.Len(), "span lengths must cover the request")
		})
	}
}

func TestSplitSpansDoNotOverlap(t *testing.T) {
	for capacity := 1; capacity <= 6; capacity++ {
		for start := 0; start < capacity; start++ {
			for length := 0; length <= capacity; length++ {
				first, second := region.Split(start, length, capacity)
				if second.IsEmpty() {
					continue
				}
				// The second span starts at offset zero and must end
				// before the first begins.
				assert.LessOrEqual(t, second.Hi, first.Lo,
					"start=%d length=%d capacity=%d", start, length, capacity)
			}
		}
	}
}
