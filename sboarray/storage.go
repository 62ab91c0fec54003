package sboarray

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Methods for selecting and viewing the active storage arm.

// ensureLayout computes the instantiation layout on first use. Every public
// method calls it before touching storage.
func (a *Array[T, B]) ensureLayout() {
	if a.layout.ready {
		return
	}
	a.layout = layoutOf[T, B]()
}

func layoutOf[T, B any]() layout {
	bt := reflect.TypeFor[B]()
	et := reflect.TypeFor[T]()
	if bt.Kind() != reflect.Array || bt.Elem() != et {
		panic(fmt.Sprintf("sboarray: buffer type %v is not an array of %v", bt, et))
	}
	return layout{
		threshold: bt.Len(),
		plain:     !typeHasPointers(et),
		ready:     true,
	}
}

// inlineSlice views the inline arm as a full-capacity slice of T. The view
// covers raw slots; only [0, count) hold live elements while inline.
func (a *Array[T, B]) inlineSlice() []T {
	if a.layout.threshold == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.inline)), a.layout.threshold)
}

// storage returns the active arm, sized to the current capacity.
func (a *Array[T, B]) storage() []T {
	if a.heap != nil {
		return a.heap
	}
	return a.inlineSlice()
}

func (a *Array[T, B]) capacity() int {
	if a.heap != nil {
		return len(a.heap)
	}
	return a.layout.threshold
}

// newBlock obtains a heap block of n element slots. The block is fully
// allocated (and zeroed) before any existing container state is touched, so
// an allocation failure aborts with the container still in its prior state.
func newBlock[T any](n int) []T {
	return make([]T, n)
}
