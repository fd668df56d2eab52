package arena

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump allocator owned by a single scope.
// Not goroutine-safe; a scope and its arena belong to one goroutine.
type Arena struct {
	chunks    []chunk
	chunkSize int
	cache     *chunkCache // nil when chunk reuse is disabled
	allocs    int
	released  bool
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used. No chunk is created
// until the first allocation.
func NewArena(chunkSize int, opts ...Option) *Arena {
	cfg := newConfig(opts...)
	if chunkSize > 0 {
		cfg.chunkSize = chunkSize
	}
	return newArena(cfg)
}

func newArena(cfg config) *Arena {
	a := &Arena{chunkSize: cfg.chunkSize}
	if cfg.chunkCache {
		a.cache = chunkCacheFor(cfg.chunkSize)
	}
	return a
}

// Allocate reserves elemSize*count bytes and returns them as a slice
// pointing into the arena's current chunk. When the current chunk cannot
// hold the request, a new chunk of max(ChunkSize, requested) bytes becomes
// the bump target; earlier chunks keep their data but are never bumped again.
//
// Negative arguments and byte counts that overflow int fail with
// ErrInvalidArgument. The returned memory is not zeroed.
func (a *Arena) Allocate(elemSize, count int) ([]byte, error) {
	if elemSize < 0 || count < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "allocate %d elements of %d bytes", count, elemSize)
	}
	if elemSize != 0 && count > math.MaxInt/elemSize {
		return nil, errors.Wrapf(ErrInvalidArgument, "allocate %d elements of %d bytes overflows", count, elemSize)
	}
	n := elemSize * count
	if uintptr(n) > math.MaxInt-alignPtr(1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "allocate %d bytes overflows chunk sizing", n)
	}
	a.panicIfReleased()
	if n == 0 {
		return []byte{}, nil
	}
	a.allocs++

	// Fast path: bump inside the current chunk
	if ci := len(a.chunks) - 1; ci >= 0 {
		c := &a.chunks[ci]
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			c.offset = off + uintptr(n)
			return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[off])), n), nil
		}
	}

	// Slow path: need new chunk
	c := a.grow(n)
	c.offset = uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[0])), n), nil
}

// AllocBytes returns n bytes from the arena, or nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	b, err := a.Allocate(1, n)
	if err != nil {
		panic(err)
	}
	return b
}

// Release hands the arena's chunks back in bulk and makes the arena
// unusable. Any subsequent allocation panics. Release is idempotent.
func (a *Arena) Release() {
	if a.released {
		return
	}
	if a.cache != nil {
		for i := range a.chunks {
			a.cache.put(a.chunks[i].buf)
		}
	}
	a.chunks = nil
	a.released = true
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.released
}

// grow appends a new chunk of at least min bytes and returns it.
func (a *Arena) grow(min int) *chunk {
	var buf []byte
	if min <= a.chunkSize {
		if a.cache != nil {
			buf = a.cache.get()
		}
		if buf == nil {
			buf = make([]byte, a.chunkSize)
		}
	} else {
		buf = make([]byte, min)
	}
	a.chunks = append(a.chunks, chunk{buf: buf})
	return &a.chunks[len(a.chunks)-1]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
