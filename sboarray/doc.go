package sboarray

/*

# Small buffer optimized array

This package provides Array, a generic resizable sequence that keeps its
elements in a fixed-size buffer embedded in the Array value itself while the
element count stays at or below a compile-time threshold, and transparently
moves them to a separately allocated block once the threshold is exceeded.

It is intended for latency sensitive code where most container instances stay
small but an upper bound cannot be guaranteed statically: per-frame gameplay
scratch lists, pathfinding work queues, and similar hot-path collections that
should not pay an allocation for the common case.

## Instantiation

The threshold is a property of the instantiated type, carried by the second
type parameter, which must be an array of the element type:

	var ids sboarray.Array[uint32, [64]uint32]
	for _, e := range entities {
		if e.Flagged() {
			ids.Push(e.ID)
		}
	}
	for _, id := range ids.Slice() {
		process(id)
	}

No allocation happens until the 65th Push. The zero value is an empty, inline
array and is ready to use. Instantiating with a buffer type that is not an
array of the element type is a programming error and panics on first use.

## Storage

An Array has exactly two storage arms and exactly one is active at any time:

	+-----------------------------+
	| inline [threshold]T         |   active while capacity == threshold
	| heap   []T (nil, or active) |   active while capacity >  threshold
	| count  int                  |
	+-----------------------------+

Slots [0, count) of the active arm hold the live elements in insertion order.
Capacity never drops below the threshold: ShrinkToFit on a small enough array
returns it to the inline arm rather than allocating a smaller block.

## Element lifetimes

Element types are classified once per instantiation. Pointer-free types are
"plain": vacated slots are left untouched because stale bytes are harmless.
For types that carry pointers (strings, slices, maps, pointer fields, ...)
every vacated slot is cleared to the zero value so the garbage collector can
reclaim whatever the old element referenced. Callers never see either case;
the live range is always [0, count).

## Contract violations versus errors

Out-of-range use of the unchecked accessors (Get, Set, Front, Back, Pop,
Insert) is treated as a programming bug and panics. At is the checked
accessor: it reports ErrIndexOutOfRange instead, for indices that are
validated externally.

## Not goals

Array is not synchronized; mutating one instance from multiple goroutines is
a data race. There is no pluggable allocator and no serialization support.
An Array value must not be copied by plain assignment once it has been used,
because the two copies would share a heap block; use Clone, Assign or
MoveFrom.

*/
