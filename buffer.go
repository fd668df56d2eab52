package arena

// Origin tells which kind of memory backs a buffer.
type Origin uint8

const (
	OriginHeap  Origin = iota // ordinary garbage-collected memory
	OriginArena               // a scope's arena; valid until the scope is disposed
	OriginPool                // a pool rental owned by a Lease
)

func (o Origin) String() string {
	switch o {
	case OriginHeap:
		return "heap"
	case OriginArena:
		return "arena"
	case OriginPool:
		return "pool"
	default:
		return "unknown"
	}
}

// Buffer is a flat run of elements tagged with its origin.
type Buffer[T any] struct {
	data   []T
	origin Origin
}

// Slice returns the buffer's elements.
func (b Buffer[T]) Slice() []T { return b.data }

// Len returns the number of elements.
func (b Buffer[T]) Len() int { return len(b.data) }

// Origin returns the kind of memory backing the buffer.
func (b Buffer[T]) Origin() Origin { return b.origin }
