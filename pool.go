package arena

import (
	"math/bits"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// poolClasses bounds the pooled capacities to 1<<0 .. 1<<(poolClasses-1)
// elements. Larger rentals are plain allocations and are dropped on Return.
const poolClasses = 31

// Pool is a goroutine-safe cache of reusable element buffers, bucketed by
// power-of-two capacity.
type Pool[T any] struct {
	classes  [poolClasses]sync.Pool
	rented   atomic.Int64
	returned atomic.Int64
}

// NewPool returns an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

var sharedPools sync.Map // reflect.Type -> *Pool[T]

// Shared returns the process-wide pool for element type T.
func Shared[T any]() *Pool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := sharedPools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := sharedPools.LoadOrStore(key, NewPool[T]())
	return p.(*Pool[T])
}

// Rent returns a zeroed buffer of length n and capacity of at least n.
// A negative n fails with ErrInvalidArgument.
func (p *Pool[T]) Rent(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "rent %d elements", n)
	}
	if !fitsCount[T](n) {
		return nil, errors.Wrapf(ErrInvalidArgument, "rent %d elements overflows", n)
	}
	p.rented.Add(1)
	if n == 0 {
		return []T{}, nil
	}
	class := bits.Len(uint(n - 1))
	if class >= poolClasses || !fitsCount[T](1<<class) {
		return make([]T, n), nil
	}
	if v := p.classes[class].Get(); v != nil {
		return (*v.(*[]T))[:n], nil
	}
	return make([]T, n, 1<<class), nil
}

// Return hands buf back to the pool. Buffers whose capacity is not a pool
// class are left to the garbage collector. buf must not be used afterwards.
func (p *Pool[T]) Return(buf []T) {
	if buf == nil {
		return
	}
	p.returned.Add(1)
	c := cap(buf)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	class := bits.TrailingZeros(uint(c))
	if class >= poolClasses {
		return
	}
	buf = buf[:c]
	clear(buf)
	p.classes[class].Put(&buf)
}

// Metrics returns a snapshot of the pool's counters.
func (p *Pool[T]) Metrics() PoolMetrics {
	rented, returned := p.rented.Load(), p.returned.Load()
	return PoolMetrics{
		Rented:      rented,
		Returned:    returned,
		Outstanding: rented - returned,
	}
}
