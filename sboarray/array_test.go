package sboarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUsable(t *testing.T) {
	var a Array[int, [4]int]
	require.Equal(t, 0, a.Len())
	require.True(t, a.IsEmpty())
	require.True(t, a.IsInline())

	a.Push(7)
	require.Equal(t, 1, a.Len())
	require.Equal(t, 4, a.Cap())
	require.Equal(t, 7, a.Get(0))
}

func TestConstructors(t *testing.T) {
	t.Run("new is empty and inline", func(t *testing.T) {
		a := New[int, [4]int]()
		require.Equal(t, 0, a.Len())
		require.Equal(t, 4, a.Cap())
		require.True(t, a.IsInline())
	})

	t.Run("with len below threshold stays inline", func(t *testing.T) {
		a := NewWithLen[int, [4]int](3)
		require.Equal(t, 3, a.Len())
		require.Equal(t, 4, a.Cap())
		require.True(t, a.IsInline())
		require.Equal(t, []int{0, 0, 0}, a.Slice())
	})

	t.Run("with len above threshold goes heap", func(t *testing.T) {
		a := NewWithLen[int, [4]int](6)
		require.Equal(t, 6, a.Len())
		require.Equal(t, 6, a.Cap())
		require.False(t, a.IsInline())
		require.Equal(t, []int{0, 0, 0, 0, 0, 0}, a.Slice())
	})

	t.Run("with negative len panics", func(t *testing.T) {
		require.Panics(t, func() { NewWithLen[int, [4]int](-1) })
	})

	t.Run("filled", func(t *testing.T) {
		a := NewFilled[string, [2]string](3, "x")
		require.Equal(t, []string{"x", "x", "x"}, a.Slice())
		require.False(t, a.IsInline())
	})

	t.Run("of literal list", func(t *testing.T) {
		a := Of[int, [4]int](1, 2, 3)
		require.Equal(t, []int{1, 2, 3}, a.Slice())
		require.True(t, a.IsInline())

		b := Of[int, [2]int](1, 2, 3)
		require.Equal(t, []int{1, 2, 3}, b.Slice())
		require.False(t, b.IsInline())
	})

	t.Run("of nothing", func(t *testing.T) {
		a := Of[int, [4]int]()
		require.Equal(t, 0, a.Len())
		require.True(t, a.IsInline())
	})
}

func TestCloneIsIndependent(t *testing.T) {
	a := Of[int, [4]int](1, 2, 3)
	b := a.Clone()

	b.Set(0, 99)
	b.Push(4)

	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.Equal(t, []int{99, 2, 3, 4}, b.Slice())
}

func TestCloneKeepsCapacityAndMode(t *testing.T) {
	a := New[int, [2]int]()
	a.Reserve(10)
	a.Append(1, 2, 3)

	b := a.Clone()
	require.Equal(t, a.Cap(), b.Cap())
	require.Equal(t, a.IsInline(), b.IsInline())
	require.Equal(t, a.Slice(), b.Slice())

	// Heap blocks are never shared.
	b.Set(0, 42)
	require.Equal(t, 1, a.Get(0))
}

func TestAssignCopies(t *testing.T) {
	a := Of[int, [4]int](9, 9, 9, 9, 9, 9)
	rhs := Of[int, [4]int](1, 2)

	a.Assign(rhs)
	require.Equal(t, []int{1, 2}, a.Slice())

	rhs.Set(0, 77)
	require.Equal(t, 1, a.Get(0), "assignment must not alias rhs storage")
}

func TestAssignSelf(t *testing.T) {
	a := Of[int, [4]int](1, 2, 3)
	a.Assign(a)
	require.Equal(t, []int{1, 2, 3}, a.Slice())
}

func TestMoveFromDrainsSource(t *testing.T) {
	t.Run("heap source transfers the block", func(t *testing.T) {
		src := Of[int, [2]int](1, 2, 3, 4)
		require.False(t, src.IsInline())

		var dst Array[int, [2]int]
		dst.MoveFrom(src)

		require.Equal(t, []int{1, 2, 3, 4}, dst.Slice())
		require.Equal(t, 0, src.Len())
		require.True(t, src.IsInline())
		require.Equal(t, 2, src.Cap())
	})

	t.Run("inline source relocates elements", func(t *testing.T) {
		src := Of[string, [4]string]("a", "b")
		dst := Of[string, [4]string]("old", "old", "old", "old", "old")

		dst.MoveFrom(src)

		require.Equal(t, []string{"a", "b"}, dst.Slice())
		require.Equal(t, 0, src.Len())
		require.True(t, src.IsInline())
	})

	t.Run("self move is a no-op", func(t *testing.T) {
		a := Of[int, [2]int](1, 2, 3)
		a.MoveFrom(a)
		require.Equal(t, []int{1, 2, 3}, a.Slice())
	})

	t.Run("source is reusable after move", func(t *testing.T) {
		src := Of[int, [2]int](1, 2, 3)
		var dst Array[int, [2]int]
		dst.MoveFrom(src)

		src.Push(10)
		require.Equal(t, []int{10}, src.Slice())
		require.Equal(t, []int{1, 2, 3}, dst.Slice())
	})
}

func TestSwap(t *testing.T) {
	a := Of[int, [2]int](1, 2, 3)
	b := Of[int, [2]int](9)

	a.Swap(b)

	require.Equal(t, []int{9}, a.Slice())
	require.True(t, a.IsInline())
	require.Equal(t, []int{1, 2, 3}, b.Slice())
	require.False(t, b.IsInline())
}

func TestClearKeepsCapacity(t *testing.T) {
	a := Of[int, [2]int](1, 2, 3, 4, 5)
	capBefore := a.Cap()

	a.Clear()

	require.Equal(t, 0, a.Len())
	require.Equal(t, capBefore, a.Cap())
	require.False(t, a.IsInline())
}
