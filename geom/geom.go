// Package geom holds the geometry value types and transient operations
// that materialise their results through arena.Memory.
//
// Every operation that produces a new point, segment, root or tile array
// takes a context. Inside an arena scope the result lives in the scope's
// arena and must be persisted to outlive it; without a scope the result is
// ordinary heap memory.
package geom

import (
	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/scopearena"
)

// ErrIndexOutOfRange reports a mutation index outside the value.
var ErrIndexOutOfRange = errors.Wrap(arena.ErrInvalidArgument, "geom: index out of range")

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Segment is the straight line between A and B.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle. It is empty when Max is not
// strictly greater than Min on both axes.
type Rect struct {
	Min, Max Point
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Polygon is an ordered run of vertices over a backing block that may be
// arena, pool or heap memory. Treat it as immutable: mutations return a
// new Polygon.
type Polygon struct {
	pts []Point
}

// NewPolygon returns a heap-backed polygon holding a copy of pts.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{pts: append([]Point(nil), pts...)}
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.pts) }

// At returns vertex i.
func (p Polygon) At(i int) Point { return p.pts[i] }

// Points is a read-only view of the vertices. Callers must not modify it.
func (p Polygon) Points() []Point { return p.pts }

// Elements implements arena.Value.
func (p Polygon) Elements() []Point { return p.pts }

// Rebase implements arena.Value.
func (p Polygon) Rebase(elems []Point) Polygon { return Polygon{pts: elems} }

// Persist copies p into pool memory that outlives the current scope.
// The returned polygon must be used in place of p; dispose the lease once
// the polygon is no longer read.
func (p Polygon) Persist() (Polygon, *arena.Lease[Point]) {
	return arena.Persist[Point](p)
}
