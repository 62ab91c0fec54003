package sboarray

import "fmt"

// Sequence editing: push, pop, positional insert and erase. All shifts use
// copy, which is overlap-safe in both directions, and vacated slots are
// cleared per the lifetime rules in lifetime.go.

// Push appends v, growing capacity as needed.
func (a *Array[T, B]) Push(v T) {
	a.ensureLayout()
	a.ensureRoomForOne()
	a.storage()[a.count] = v
	a.count++
}

// Append pushes each value in order.
func (a *Array[T, B]) Append(vs ...T) {
	a.ensureLayout()
	if len(vs) == 0 {
		return
	}
	a.Reserve(a.count + len(vs))
	copy(a.storage()[a.count:], vs)
	a.count += len(vs)
}

// Extend appends a zero-valued element and returns a pointer to it, so the
// caller can construct the value in place. The pointer is valid until the
// next operation that reallocates or shifts storage.
func (a *Array[T, B]) Extend() *T {
	a.ensureLayout()
	a.ensureRoomForOne()
	s := a.storage()
	var zero T
	s[a.count] = zero
	a.count++
	return &s[a.count-1]
}

// Pop removes and returns the last element. Popping an empty array is a
// programming error and panics.
func (a *Array[T, B]) Pop() T {
	a.ensureLayout()
	if a.count == 0 {
		panic("sboarray: Pop on empty array")
	}
	s := a.storage()
	a.count--
	v := s[a.count]
	a.clearRange(s, a.count, 1)
	return v
}

// Insert places v at index i, shifting [i, Len()) one slot right, and returns
// the index of the inserted element. i must be in [0, Len()]; anything else
// panics.
func (a *Array[T, B]) Insert(i int, v T) int {
	a.ensureLayout()
	if i < 0 || i > a.count {
		panic(fmt.Sprintf("sboarray: Insert index %d out of range [0, %d]", i, a.count))
	}
	a.ensureRoomForOne()
	s := a.storage()
	copy(s[i+1:a.count+1], s[i:a.count])
	s[i] = v
	a.count++
	return i
}

// InsertSlice places copies of vs at index i in source order, shifting
// [i, Len()) right by len(vs), and returns i. An empty vs is a no-op. vs must
// not alias this array's own storage. i must be in [0, Len()]; anything else
// panics.
func (a *Array[T, B]) InsertSlice(i int, vs []T) int {
	a.ensureLayout()
	if i < 0 || i > a.count {
		panic(fmt.Sprintf("sboarray: InsertSlice index %d out of range [0, %d]", i, a.count))
	}
	n := len(vs)
	if n == 0 {
		return i
	}
	a.Reserve(a.count + n)
	s := a.storage()
	copy(s[i+n:a.count+n], s[i:a.count])
	copy(s[i:i+n], vs)
	a.count += n
	return i
}

// Erase removes the element at index i, shifting [i+1, Len()) one slot left,
// and returns i. An index outside [0, Len()) returns Len() without mutating.
func (a *Array[T, B]) Erase(i int) int {
	a.ensureLayout()
	if i < 0 || i >= a.count {
		return a.count
	}
	s := a.storage()
	copy(s[i:a.count-1], s[i+1:a.count])
	a.count--
	a.clearRange(s, a.count, 1)
	return i
}

// EraseRange removes the elements in [i, j), shifting [j, Len()) left, and
// returns i. An invalid range (i < 0, j > Len(), or i > j) returns Len()
// without mutating; an empty range returns i unchanged.
func (a *Array[T, B]) EraseRange(i, j int) int {
	a.ensureLayout()
	if i < 0 || j > a.count || i > j {
		return a.count
	}
	if i == j {
		return i
	}
	s := a.storage()
	n := j - i
	copy(s[i:a.count-n], s[j:a.count])
	a.clearRange(s, a.count-n, n)
	a.count -= n
	return i
}
