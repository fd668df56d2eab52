package geom

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/scopearena"
)

// Scale multiplies every vertex of p by f about the origin.
func Scale(ctx context.Context, p Polygon, f float64) (Polygon, error) {
	buf, err := arena.Memory[Point](ctx, p.Len())
	if err != nil {
		return Polygon{}, err
	}
	out := buf.Slice()
	for i, pt := range p.pts {
		out[i] = Point{X: pt.X * f, Y: pt.Y * f}
	}
	return Polygon{pts: out}, nil
}

// Translate moves every vertex of p by (dx, dy).
func Translate(ctx context.Context, p Polygon, dx, dy float64) (Polygon, error) {
	buf, err := arena.Memory[Point](ctx, p.Len())
	if err != nil {
		return Polygon{}, err
	}
	out := buf.Slice()
	for i, pt := range p.pts {
		out[i] = Point{X: pt.X + dx, Y: pt.Y + dy}
	}
	return Polygon{pts: out}, nil
}

// Edges returns the closed outline of p: one segment per vertex, the last
// joining the final vertex back to the first. Fewer than two vertices have
// no edges, and two vertices have exactly one.
func Edges(ctx context.Context, p Polygon) ([]Segment, error) {
	n := p.Len()
	count := n
	switch {
	case n < 2:
		count = 0
	case n == 2:
		count = 1
	}
	buf, err := arena.Memory[Segment](ctx, count)
	if err != nil {
		return nil, err
	}
	out := buf.Slice()
	for i := range out {
		out[i] = Segment{A: p.pts[i], B: p.pts[(i+1)%n]}
	}
	return out, nil
}

// Bounds returns the smallest rectangle containing every vertex of p.
func Bounds(p Polygon) Rect {
	if p.Len() == 0 {
		return Rect{}
	}
	r := Rect{Min: p.pts[0], Max: p.pts[0]}
	for _, pt := range p.pts[1:] {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}

// QuadraticRoots returns the real roots of a*x^2 + b*x + c in ascending
// order. A double root is reported once. A degenerate equation with a and
// b both zero has no reported roots.
func QuadraticRoots(ctx context.Context, a, b, c float64) ([]float64, error) {
	var roots [2]float64
	n := 0
	switch {
	case a == 0 && b == 0:
	case a == 0:
		roots[0], n = -c/b, 1
	default:
		disc := b*b - 4*a*c
		switch {
		case disc < 0:
		case disc == 0:
			roots[0], n = -b/(2*a), 1
		default:
			// Avoids cancellation between -b and sqrt(disc).
			q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
			r1, r2 := q/a, c/q
			if r1 > r2 {
				r1, r2 = r2, r1
			}
			roots[0], roots[1], n = r1, r2, 2
		}
	}
	buf, err := arena.Memory[float64](ctx, n)
	if err != nil {
		return nil, err
	}
	out := buf.Slice()
	copy(out, roots[:n])
	return out, nil
}

// Tile covers r with w-by-h tiles laid out row by row from r.Min. Tiles on
// the far edges are clipped to r. An empty r yields no tiles. A tile size
// that is not positive and finite, a non-finite r, or a tile count that
// does not fit in an int fails with arena.ErrInvalidArgument.
func Tile(ctx context.Context, r Rect, w, h float64) ([]Rect, error) {
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return nil, errors.Wrapf(arena.ErrInvalidArgument, "tile size %gx%g", w, h)
	}
	if !finite(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) {
		return nil, errors.Wrapf(arena.ErrInvalidArgument, "tile non-finite rect %v", r)
	}
	cols, rows := 0, 0
	if !r.Empty() {
		var ok bool
		if cols, ok = tileCount(r.Max.X-r.Min.X, w); !ok {
			return nil, errors.Wrapf(arena.ErrInvalidArgument, "tile %g wide in steps of %g", r.Max.X-r.Min.X, w)
		}
		if rows, ok = tileCount(r.Max.Y-r.Min.Y, h); !ok {
			return nil, errors.Wrapf(arena.ErrInvalidArgument, "tile %g high in steps of %g", r.Max.Y-r.Min.Y, h)
		}
		if cols > math.MaxInt/rows {
			return nil, errors.Wrapf(arena.ErrInvalidArgument, "tile %dx%d overflows", cols, rows)
		}
	}
	buf, err := arena.Memory[Rect](ctx, cols*rows)
	if err != nil {
		return nil, err
	}
	out := buf.Slice()
	for row := 0; row < rows; row++ {
		y := r.Min.Y + float64(row)*h
		for col := 0; col < cols; col++ {
			x := r.Min.X + float64(col)*w
			out[row*cols+col] = Rect{
				Min: Point{X: x, Y: y},
				Max: Point{X: math.Min(x+w, r.Max.X), Y: math.Min(y+h, r.Max.Y)},
			}
		}
	}
	return out, nil
}

// tileCount returns ceil(extent/step) when it fits in an int.
func tileCount(extent, step float64) (int, bool) {
	n := math.Ceil(extent / step)
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if math.IsInf(n, 0) || math.IsNaN(n) || n >= float64(math.MaxInt) {
		return 0, false
	}
	return int(n), true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
