package sboarray

import "reflect"

// Element lifetime primitives.
//
// Go has no destructors; the one lifetime obligation a container has is to
// drop references held in slots that are no longer part of the live range,
// so the garbage collector can reclaim what they point at. Pointer-free
// ("plain") element types have no such obligation and their vacated slots
// are left as-is.

// clearRange zeroes n vacated slots of s starting at i. No-op for plain T.
func (a *Array[T, B]) clearRange(s []T, i, n int) {
	if a.layout.plain || n <= 0 {
		return
	}
	clear(s[i : i+n])
}

// typeHasPointers reports whether values of t can reference heap memory.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, channels, funcs, interfaces, strings and
		// unsafe.Pointer all reference memory outside the slot.
		return true
	}
}
