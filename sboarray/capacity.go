package sboarray

// Capacity planning: growth on demand, reservation and shrinking, and the
// storage transitions they imply.

// Reserve grows capacity to at least n. It never shrinks, never changes the
// live elements, and does nothing when n slots are already available.
func (a *Array[T, B]) Reserve(n int) {
	a.ensureLayout()
	if n > a.capacity() {
		a.resizeStorage(n)
	}
}

// ShrinkToFit reduces capacity to the live count, bounded below by the inline
// threshold. When the live count fits the inline buffer the elements move
// back into it and the heap block is released.
func (a *Array[T, B]) ShrinkToFit() {
	a.ensureLayout()
	if a.count < a.capacity() {
		a.resizeStorage(a.count)
	}
}

// ensureRoomForOne makes room for a single push, doubling capacity when the
// live range is full. Growing from zero capacity jumps straight to the
// threshold.
func (a *Array[T, B]) ensureRoomForOne() {
	c := a.capacity()
	if a.count < c {
		return
	}
	newCap := c * 2
	if c == 0 {
		newCap = a.layout.threshold
	}
	if newCap <= a.count {
		// Zero-length inline buffer type; grow off the element count instead.
		newCap = a.count + 1
	}
	a.resizeStorage(newCap)
}

// resizeStorage retargets capacity to max(newCap, threshold), relocating the
// live elements between arms as needed. Callers never request less than the
// live count. The new block is obtained and filled before the old live range
// is released, so the container is never observable half-migrated.
func (a *Array[T, B]) resizeStorage(newCap int) {
	th := a.layout.threshold
	newCap = max(newCap, th)
	keep := min(a.count, newCap)
	toHeap := newCap > th

	if toHeap == (a.heap != nil) && newCap == a.capacity() {
		return
	}

	old := a.storage()
	if toHeap {
		block := newBlock[T](newCap)
		copy(block, old[:keep])
		if a.heap == nil {
			// The inline arm keeps its bytes after the move; drop the
			// references those slots still hold.
			a.clearRange(old, 0, a.count)
		}
		a.heap = block
	} else {
		// Target is the inline arm. An inline source is always a no-op above,
		// so old is the heap block here and is released wholesale.
		copy(a.inlineSlice(), old[:keep])
		a.heap = nil
	}
	a.count = keep
}
