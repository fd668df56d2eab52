package geom

import (
	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/scopearena"
)

// Add returns a heap-backed copy of p with pt appended.
func (p Polygon) Add(pt Point) Polygon {
	out := make([]Point, p.Len()+1)
	return Polygon{pts: appendInto(out, p.pts, pt)}
}

// AddPooled is Add with the result rented from pool. The caller owns the
// returned lease and must dispose it once the result is no longer read.
func (p Polygon) AddPooled(pt Point, pool *arena.Pool[Point]) (Polygon, *arena.Lease[Point], error) {
	l, err := arena.Rent(pool, p.Len()+1)
	if err != nil {
		return Polygon{}, nil, err
	}
	return Polygon{pts: appendInto(l.Slice(), p.pts, pt)}, l, nil
}

// InsertAt returns a heap-backed copy of p with pt inserted before vertex i.
// i may equal Len, which appends.
func (p Polygon) InsertAt(i int, pt Point) (Polygon, error) {
	if i < 0 || i > p.Len() {
		return Polygon{}, errors.Wrapf(ErrIndexOutOfRange, "insert at %d into %d vertices", i, p.Len())
	}
	out := make([]Point, p.Len()+1)
	return Polygon{pts: insertInto(out, p.pts, i, pt)}, nil
}

// InsertAtPooled is InsertAt with the result rented from pool.
func (p Polygon) InsertAtPooled(i int, pt Point, pool *arena.Pool[Point]) (Polygon, *arena.Lease[Point], error) {
	if i < 0 || i > p.Len() {
		return Polygon{}, nil, errors.Wrapf(ErrIndexOutOfRange, "insert at %d into %d vertices", i, p.Len())
	}
	l, err := arena.Rent(pool, p.Len()+1)
	if err != nil {
		return Polygon{}, nil, err
	}
	return Polygon{pts: insertInto(l.Slice(), p.pts, i, pt)}, l, nil
}

// RemoveAt returns a heap-backed copy of p without vertex i.
func (p Polygon) RemoveAt(i int) (Polygon, error) {
	if i < 0 || i >= p.Len() {
		return Polygon{}, errors.Wrapf(ErrIndexOutOfRange, "remove at %d from %d vertices", i, p.Len())
	}
	out := make([]Point, p.Len()-1)
	return Polygon{pts: removeInto(out, p.pts, i)}, nil
}

// RemoveAtPooled is RemoveAt with the result rented from pool.
func (p Polygon) RemoveAtPooled(i int, pool *arena.Pool[Point]) (Polygon, *arena.Lease[Point], error) {
	if i < 0 || i >= p.Len() {
		return Polygon{}, nil, errors.Wrapf(ErrIndexOutOfRange, "remove at %d from %d vertices", i, p.Len())
	}
	l, err := arena.Rent(pool, p.Len()-1)
	if err != nil {
		return Polygon{}, nil, err
	}
	return Polygon{pts: removeInto(l.Slice(), p.pts, i)}, l, nil
}

// dst must hold len(src)+1 elements.
func appendInto(dst, src []Point, pt Point) []Point {
	copy(dst, src)
	dst[len(src)] = pt
	return dst
}

// dst must hold len(src)+1 elements.
func insertInto(dst, src []Point, i int, pt Point) []Point {
	copy(dst, src[:i])
	dst[i] = pt
	copy(dst[i+1:], src[i:])
	return dst
}

// dst must hold len(src)-1 elements.
func removeInto(dst, src []Point, i int) []Point {
	copy(dst, src[:i])
	copy(dst[i:], src[i+1:])
	return dst
}
