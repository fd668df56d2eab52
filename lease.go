package arena

// Lease owns a pool-rented buffer. The holder must call Dispose exactly
// once; until then the buffer is independent of any scope.
type Lease[T any] struct {
	pool *Pool[T]
	buf  []T
}

// Rent rents n elements from pool and wraps them in a Lease.
func Rent[T any](pool *Pool[T], n int) (*Lease[T], error) {
	buf, err := pool.Rent(n)
	if err != nil {
		return nil, err
	}
	return &Lease[T]{pool: pool, buf: buf}, nil
}

// Slice returns the leased elements. The slice is capped at its length,
// so appending to it never writes into pooled memory.
func (l *Lease[T]) Slice() []T { return l.buf[:len(l.buf):len(l.buf)] }

// Len returns the logical length of the lease.
func (l *Lease[T]) Len() int { return len(l.buf) }

// Origin is always OriginPool.
func (l *Lease[T]) Origin() Origin { return OriginPool }

// Dispose returns the buffer to its pool. Values built over the lease
// must not be read afterwards.
func (l *Lease[T]) Dispose() {
	l.pool.Return(l.buf)
	l.buf = nil
}

// Value is a flat element buffer that can be rebuilt over other memory.
// Geometry values implement it to become persistable.
type Value[E, V any] interface {
	// Elements returns the value's elements in order.
	Elements() []E
	// Rebase returns a copy of the value backed by elems.
	Rebase(elems []E) V
}

// Persist copies v into memory rented from the shared pool for E and
// returns the value rebuilt over that memory, together with the Lease
// owning it. The result stays readable after the scope that produced v is
// disposed; v itself must no longer be used.
//
// Persist always rents and copies, even when v is heap-backed.
func Persist[E any, V Value[E, V]](v V) (V, *Lease[E]) {
	return PersistTo[E](Shared[E](), v)
}

// PersistTo is Persist with an explicit pool.
func PersistTo[E any, V Value[E, V]](pool *Pool[E], v V) (V, *Lease[E]) {
	l := persist(pool, v.Elements())
	return v.Rebase(l.Slice()), l
}

// PersistSlice copies src into a Lease from the shared pool for T.
func PersistSlice[T any](src []T) *Lease[T] {
	return persist(Shared[T](), src)
}

func persist[T any](pool *Pool[T], src []T) *Lease[T] {
	l, err := Rent(pool, len(src))
	if err != nil {
		// len is never negative
		panic(err)
	}
	copy(l.buf, src)
	return l
}
