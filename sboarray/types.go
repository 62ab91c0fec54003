package sboarray

import "errors"

var (
	// ErrIndexOutOfRange is reported by At for indices outside the live range.
	// The wrapped message carries the offending index and the current length.
	ErrIndexOutOfRange = errors.New("sboarray: index out of range")
)

// Array is a small buffer optimized sequence of T.
//
// B must be an array type with element type T, for example [64]T. Its length
// is the inline threshold: the number of elements the Array can hold without
// allocating. See the package documentation for the full storage contract.
//
// The zero value is an empty array using the inline buffer.
type Array[T any, B any] struct {
	inline B
	heap   []T
	count  int
	layout layout
}

// layout is the per-instantiation classification of T and B, computed once on
// first use and cached in the Array value.
type layout struct {
	threshold int
	plain     bool
	ready     bool
}
