package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qntx/ring"
)

func TestIter(t *testing.T) {
	b := wrapped(t) // holds 2 3 4 5 across the wrap point

	var got []int
	for v := range b.Iter() {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, got)
	assert.Equal(t, 4, b.Len(), "iteration must not consume")
}

func TestIterRestartable(t *testing.T) {
	b, err := ring.New[int](4)
	require.NoError(t, err)
	b.PushSlice([]int{1, 2, 3})

	seq := b.Iter()
	for range 2 {
		var got []int
		for v := range seq {
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	}
}

func TestIterEarlyBreak(t *testing.T) {
	b, err := ring.New[int](4)
	require.NoError(t, err)
	b.PushSlice([]int{1, 2, 3})

	var got []int
	for v := range b.Iter() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, b.Len())
}

func TestIterSnapshotIsolation(t *testing.T) {
	b, err := ring.New[int](8)
	require.NoError(t, err)
	b.PushSlice([]int{1, 2, 3})

	var got []int
	for v := range b.Iter() {
		got = append(got, v)
		// Pushes from inside the loop must not be observed by this
		// iteration.
		require.NoError(t, b.Push(v*10))
	}
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 6, b.Len())
}

func TestAll(t *testing.T) {
	b, err := ring.New[string](4)
	require.NoError(t, err)
	b.PushSlice([]string{"a", "b", "c"})

	got := map[int]string{}
	for i, v := range b.All() {
		got[i] = v
	}
	assert.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, got)
}

func TestDrain(t *testing.T) {
	b := wrapped(t)

	var got []int
	for v := range b.Drain() {
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, got)
	assert.True(t, b.IsEmpty())
}

func TestDrainAbandoned(t *testing.T) {
	b, err := ring.New[int](6)
	require.NoError(t, err)
	b.PushSlice([]int{1, 2, 3, 4, 5})

	var got []int
	for v := range b.Drain() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	// The yielded elements are gone; the rest remain in order.
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{3, 4, 5}, b.ToSlice())
}

func TestDrainEmpty(t *testing.T) {
	b, err := ring.New[int](2)
	require.NoError(t, err)

	count := 0
	for range b.Drain() {
		count++
	}
	assert.Equal(t, 0, count)
}
