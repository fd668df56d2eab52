package arena

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// AllocSlice allocates a zeroed slice of n elements of type T inside the arena.
// T must be pointer-free: chunks are plain bytes and the garbage collector
// does not scan them, so pointerful element types fail with ErrInvalidArgument.
// The slice is valid until the arena is released.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if !PointerFree[T]() {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s contains pointers", reflect.TypeFor[T]())
	}
	var zero T
	b, err := a.Allocate(int(unsafe.Sizeof(zero)), n)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		// Zero-sized requests and zero-sized types never touch a chunk.
		return make([]T, n), nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

var pointerFree sync.Map // reflect.Type -> bool

// PointerFree reports whether values of T hold no Go pointers, which
// makes T eligible for arena backing.
func PointerFree[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := pointerFree.Load(t); ok {
		return v.(bool)
	}
	free := !hasPointers(t)
	pointerFree.Store(t, free)
	return free
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// pointers, slices, strings, maps, chans, funcs, interfaces
		return true
	}
}
