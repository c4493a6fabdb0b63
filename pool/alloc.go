// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The generic allocation entry point. Go methods cannot carry type
// parameters, so Alloc is a package-level function over *Allocator.

package pool

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/momentics/objpool/api"
)

// Alloc places value into a recycled slot of the smallest fitting size class
// and returns the owning handle. T must be pointer-free (no pointers, maps,
// slices, strings, channels, interfaces or funcs anywhere in its layout) and
// fit the allocator's maximum slot size.
//
// Errors: ErrOversizedType and ErrReferenceType are usage errors raised
// before any memory request; ErrOutOfMemory propagates a block source
// failure during growth; ErrWrongThread and ErrClosed report misuse of the
// allocator itself.
func Alloc[T any](a *Allocator, value T) (Handle[T], error) {
	var none Handle[T]
	if err := a.check(); err != nil {
		return none, err
	}
	size := int(unsafe.Sizeof(value))
	c, ok := classFor(size, a.maxSlot)
	if !ok {
		return none, fmt.Errorf("%w: %T is %d bytes, max slot %d",
			api.ErrOversizedType, value, size, a.maxSlot)
	}
	if err := a.checkType(reflect.TypeOf((*T)(nil)).Elem()); err != nil {
		return none, err
	}
	p := a.poolFor(c)
	slot, err := p.acquire()
	if err != nil {
		return none, err
	}
	*(*T)(slot) = value
	return Handle[T]{slot: slot, pool: p}, nil
}

// checkType rejects types the garbage collector would need to trace into a
// slot. Verdicts are cached per type.
func (a *Allocator) checkType(t reflect.Type) error {
	err, ok := a.types[t]
	if !ok {
		err = nil
		if hasPointers(t) {
			err = fmt.Errorf("%w: %s", api.ErrReferenceType, t)
		}
		a.types[t] = err
	}
	return err
}

// hasPointers reports whether a value of type t contains Go pointers
// anywhere in its layout. Slots live in noscan memory, so such types must
// stay on the regular heap.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, UnsafePointer, Map, Chan, Slice, String, Interface, Func.
		return true
	}
}
