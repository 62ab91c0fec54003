package sboarray

// Construction, assignment and whole-container operations.

// New returns an empty Array using the inline buffer. It validates the
// instantiation eagerly; the zero value works too and validates lazily.
func New[T any, B any]() *Array[T, B] {
	a := &Array[T, B]{}
	a.ensureLayout()
	return a
}

// NewWithLen returns an Array holding n zero-valued elements. Capacity is the
// inline threshold or n, whichever is larger.
func NewWithLen[T any, B any](n int) *Array[T, B] {
	if n < 0 {
		panic("sboarray: NewWithLen with negative length")
	}
	a := New[T, B]()
	a.resizeStorage(n)
	a.count = n
	return a
}

// NewFilled returns an Array holding n copies of v.
func NewFilled[T any, B any](n int, v T) *Array[T, B] {
	a := NewWithLen[T, B](n)
	s := a.storage()
	for i := range s[:n] {
		s[i] = v
	}
	return a
}

// Of returns an Array holding the given elements in order.
func Of[T any, B any](vs ...T) *Array[T, B] {
	a := New[T, B]()
	a.Reserve(len(vs))
	copy(a.storage(), vs)
	a.count = len(vs)
	return a
}

// Clone returns an independent copy with the same elements and capacity.
// Mutating either array never affects the other.
func (a *Array[T, B]) Clone() *Array[T, B] {
	a.ensureLayout()
	c := New[T, B]()
	c.resizeStorage(a.capacity())
	copy(c.storage(), a.storage()[:a.count])
	c.count = a.count
	return c
}

// Assign replaces a's contents with an independent copy of rhs. The copy is
// built completely before a is touched, so a failed allocation leaves a
// unchanged. Self-assignment is a no-op.
func (a *Array[T, B]) Assign(rhs *Array[T, B]) {
	if a == rhs {
		return
	}
	tmp := rhs.Clone()
	a.ensureLayout()
	a.Swap(tmp)
}

// MoveFrom takes rhs's elements, releasing a's previous contents. A heap
// block transfers ownership directly; inline elements are relocated. rhs is
// left empty and inline. Self-move is a no-op.
func (a *Array[T, B]) MoveFrom(rhs *Array[T, B]) {
	if a == rhs {
		return
	}
	a.ensureLayout()
	rhs.ensureLayout()

	a.Clear()
	a.heap = rhs.heap
	if rhs.heap == nil {
		src := rhs.inlineSlice()
		copy(a.inlineSlice(), src[:rhs.count])
		rhs.clearRange(src, 0, rhs.count)
	}
	a.count = rhs.count

	rhs.heap = nil
	rhs.count = 0
}

// Swap exchanges the complete state of a and rhs.
func (a *Array[T, B]) Swap(rhs *Array[T, B]) {
	if a == rhs {
		return
	}
	a.ensureLayout()
	rhs.ensureLayout()
	a.inline, rhs.inline = rhs.inline, a.inline
	a.heap, rhs.heap = rhs.heap, a.heap
	a.count, rhs.count = rhs.count, a.count
}

// Clear removes all elements. Capacity and storage mode are unchanged.
func (a *Array[T, B]) Clear() {
	a.ensureLayout()
	a.clearRange(a.storage(), 0, a.count)
	a.count = 0
}

// Len returns the number of live elements.
func (a *Array[T, B]) Len() int { return a.count }

// Cap returns the number of element slots available without reallocation.
// It is never less than the inline threshold.
func (a *Array[T, B]) Cap() int {
	a.ensureLayout()
	return a.capacity()
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T, B]) IsEmpty() bool { return a.count == 0 }

// IsInline reports whether the inline buffer is the active storage.
func (a *Array[T, B]) IsInline() bool { return a.heap == nil }

// Threshold returns the inline capacity of this instantiation.
func (a *Array[T, B]) Threshold() int {
	a.ensureLayout()
	return a.layout.threshold
}
