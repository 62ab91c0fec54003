package sboarray

import (
	"testing"

	"gotest.tools/v3/assert"
)

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

func TestLayoutValidation(t *testing.T) {
	t.Run("threshold comes from the buffer type", func(t *testing.T) {
		assert.Equal(t, 4, New[int, [4]int]().Threshold())
		assert.Equal(t, 64, New[uint32, [64]uint32]().Threshold())
		assert.Equal(t, 0, New[int, [0]int]().Threshold())
	})

	t.Run("buffer element type must match", func(t *testing.T) {
		expectPanic(t, func() { New[int, [4]byte]() })
		expectPanic(t, func() { New[int32, [4]int64]() })
	})

	t.Run("buffer must be an array", func(t *testing.T) {
		expectPanic(t, func() { New[int, []int]() })
		expectPanic(t, func() { New[int, int]() })
	})

	t.Run("zero value validates on first use", func(t *testing.T) {
		var a Array[int, [4]byte]
		expectPanic(t, func() { a.Push(1) })
	})
}

func TestStorageArms(t *testing.T) {
	a := New[int, [4]int]()
	a.Append(1, 2)

	assert.Equal(t, 4, len(a.inlineSlice()))
	assert.Assert(t, a.heap == nil)

	a.Append(3, 4, 5)
	assert.Assert(t, a.heap != nil)
	assert.Equal(t, a.capacity(), len(a.heap))

	// The heap arm is the active storage now.
	assert.Equal(t, 5, a.storage()[4])
}

func TestZeroSizedElements(t *testing.T) {
	a := New[struct{}, [4]struct{}]()
	for i := 0; i < 10; i++ {
		a.Push(struct{}{})
	}
	assert.Equal(t, 10, a.Len())
	assert.Assert(t, a.Cap() >= 10)
}
