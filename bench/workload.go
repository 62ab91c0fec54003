package bench

import (
	"fmt"
	"testing"

	"github.com/framekit/go-sboarray/sboarray"
)

// Workload construction. Each scenario maps to a closure runnable under
// testing.Benchmark. The element kinds are concrete instantiations so the
// measured code is exactly what a caller of the library would run.

type smallElem = uint32

type largeElem struct {
	ID      uint64
	Pos     [3]float32
	Vel     [3]float32
	Flags   uint32
	Padding [28]byte
}

type boxedElem struct {
	ID   uint64
	Name string
}

func workloadFor(s Scenario) (func(b *testing.B), error) {
	switch s.Element {
	case ElementSmall:
		return elementWorkload(s, func(i int) smallElem { return smallElem(i) })
	case ElementLarge:
		return elementWorkload(s, func(i int) largeElem { return largeElem{ID: uint64(i)} })
	case ElementBoxed:
		return elementWorkload(s, func(i int) boxedElem {
			return boxedElem{ID: uint64(i), Name: "entity"}
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadElement, s.Element)
	}
}

func elementWorkload[T any](s Scenario, mk func(i int) T) (func(b *testing.B), error) {
	switch s.Op {
	case OpPush:
		return func(b *testing.B) {
			for b.Loop() {
				var a sboarray.Array[T, [Threshold]T]
				for i := 0; i < s.Items; i++ {
					a.Push(mk(i))
				}
			}
		}, nil
	case OpInsertFront:
		return func(b *testing.B) {
			for b.Loop() {
				var a sboarray.Array[T, [Threshold]T]
				for i := 0; i < s.Items; i++ {
					a.Insert(0, mk(i))
				}
			}
		}, nil
	case OpEraseFront:
		return func(b *testing.B) {
			var a sboarray.Array[T, [Threshold]T]
			for b.Loop() {
				for i := 0; i < s.Items; i++ {
					a.Push(mk(i))
				}
				for a.Len() > 0 {
					a.Erase(0)
				}
			}
		}, nil
	case OpMixed:
		return func(b *testing.B) {
			for b.Loop() {
				var a sboarray.Array[T, [Threshold]T]
				for i := 0; i < s.Items; i++ {
					switch i % 4 {
					case 0, 1:
						a.Push(mk(i))
					case 2:
						a.Insert(0, mk(i))
					default:
						a.Pop()
					}
				}
				a.Clear()
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadOp, s.Op)
	}
}
