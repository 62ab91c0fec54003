package sboarray

import (
	"fmt"
	"iter"
)

// Element access and traversal over the live range.

// At returns a pointer to the element at index i, or ErrIndexOutOfRange
// (wrapped with the offending index and current length) when i is outside
// [0, Len()). Use At for externally validated indices; Get and Set for
// indices the caller already guarantees.
func (a *Array[T, B]) At(i int) (*T, error) {
	a.ensureLayout()
	if i < 0 || i >= a.count {
		return nil, fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, a.count)
	}
	return &a.storage()[i], nil
}

// Get returns the element at index i. i must be in [0, Len()); anything else
// panics.
func (a *Array[T, B]) Get(i int) T {
	a.ensureLayout()
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("sboarray: index %d out of range [0, %d)", i, a.count))
	}
	return a.storage()[i]
}

// Set replaces the element at index i. i must be in [0, Len()); anything else
// panics.
func (a *Array[T, B]) Set(i int, v T) {
	a.ensureLayout()
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("sboarray: index %d out of range [0, %d)", i, a.count))
	}
	a.storage()[i] = v
}

// Front returns the first element. Panics on an empty array.
func (a *Array[T, B]) Front() T {
	a.ensureLayout()
	if a.count == 0 {
		panic("sboarray: Front on empty array")
	}
	return a.storage()[0]
}

// Back returns the last element. Panics on an empty array.
func (a *Array[T, B]) Back() T {
	a.ensureLayout()
	if a.count == 0 {
		panic("sboarray: Back on empty array")
	}
	return a.storage()[a.count-1]
}

// Slice returns the live range [0, Len()) as a slice sharing the array's
// storage: writes through it mutate the array. The view is invalidated by
// any operation that grows, shrinks or shifts storage. Appending to the
// returned slice never writes into the array's spare capacity.
func (a *Array[T, B]) Slice() []T {
	a.ensureLayout()
	return a.storage()[0:a.count:a.count]
}

// All returns an index/value iterator over the live range. The array must
// not be mutated during iteration.
func (a *Array[T, B]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := a.Slice()
		for i := range s {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live range. The array must not be
// mutated during iteration.
func (a *Array[T, B]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := a.Slice()
		for i := range s {
			if !yield(s[i]) {
				return
			}
		}
	}
}
