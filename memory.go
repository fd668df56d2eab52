package arena

import (
	"context"
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Memory returns a zeroed buffer of exactly count elements. When ctx
// carries an active scope the buffer comes from that scope's arena and is
// valid only until the scope is disposed; otherwise it is heap memory with
// an ordinary lifetime. The same call site works either way.
//
// Element types holding pointers are always served from the heap.
// A negative count, or one whose byte size overflows an int, fails with
// ErrInvalidArgument.
func Memory[T any](ctx context.Context, count int) (Buffer[T], error) {
	return memoryIn[T](Current(ctx), count)
}

// MemoryOn is Memory for callers holding a stack directly.
func MemoryOn[T any](st *Stack, count int) (Buffer[T], error) {
	var s *Scope
	if st != nil {
		s = st.Current()
	}
	return memoryIn[T](s, count)
}

func memoryIn[T any](s *Scope, count int) (Buffer[T], error) {
	if err := checkCount[T](count); err != nil {
		return Buffer[T]{}, err
	}
	if s == nil || !PointerFree[T]() {
		return Buffer[T]{data: make([]T, count), origin: OriginHeap}, nil
	}
	data, err := AllocSlice[T](s.arena, count)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{data: data, origin: OriginArena}, nil
}

// checkCount rejects counts that are negative or whose byte size does not
// fit in an int, so heap, pool and arena paths fail alike.
func checkCount[T any](count int) error {
	if count < 0 {
		return errors.Wrapf(ErrInvalidArgument, "memory for %d elements", count)
	}
	if !fitsCount[T](count) {
		var zero T
		return errors.Wrapf(ErrInvalidArgument, "memory for %d elements of %d bytes overflows", count, unsafe.Sizeof(zero))
	}
	return nil
}

// fitsCount reports whether count elements of T have a representable size.
func fitsCount[T any](count int) bool {
	var zero T
	size := int(unsafe.Sizeof(zero))
	return size == 0 || count <= math.MaxInt/size
}
