package sboarray

import "testing"

// The point of the inline buffer is that below-threshold workloads never
// allocate. These benchmarks pin that against plain slice append for the
// small case, and keep an eye on the overhead for the large case.

func BenchmarkPushBelowThreshold(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var a Array[uint32, [64]uint32]
		for i := uint32(0); i < 48; i++ {
			a.Push(i)
		}
	}
}

func BenchmarkSliceAppendBelowThreshold(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var s []uint32
		for i := uint32(0); i < 48; i++ {
			s = append(s, i)
		}
		_ = s
	}
}

func BenchmarkPushAboveThreshold(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var a Array[uint32, [64]uint32]
		for i := uint32(0); i < 1024; i++ {
			a.Push(i)
		}
	}
}

func BenchmarkSliceAppendAboveThreshold(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var s []uint32
		for i := uint32(0); i < 1024; i++ {
			s = append(s, i)
		}
		_ = s
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var a Array[uint32, [64]uint32]
		for i := uint32(0); i < 64; i++ {
			a.Insert(0, i)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	a := New[uint32, [64]uint32]()
	b.ReportAllocs()
	for b.Loop() {
		for i := uint32(0); i < 64; i++ {
			a.Push(i)
		}
		for a.Len() > 0 {
			a.Erase(0)
		}
	}
}
