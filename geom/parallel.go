package geom

import (
	"context"

	"github.com/pavanmanishd/scopearena"
)

// ScaleEach scales every polygon on its own goroutine. Each task works in
// a private arena scope and persists its result before the scope ends, so
// the returned polygons are pool-backed and independent of any scope. The
// caller disposes the returned leases; on error none are returned.
func ScaleEach(ctx context.Context, polys []Polygon, f float64) ([]Polygon, []*arena.Lease[Point], error) {
	out := make([]Polygon, len(polys))
	leases := make([]*arena.Lease[Point], len(polys))
	g, _ := arena.WithGroup(ctx)
	for i, p := range polys {
		g.Go(func(ctx context.Context) error {
			ctx, s := arena.Begin(ctx)
			defer s.Dispose()
			scaled, err := Scale(ctx, p, f)
			if err != nil {
				return err
			}
			out[i], leases[i] = scaled.Persist()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, l := range leases {
			if l != nil {
				l.Dispose()
			}
		}
		return nil, nil, err
	}
	return out, leases, nil
}
