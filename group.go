package arena

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Group runs tasks on new goroutines. Every task receives a detached
// context: scopes active in the dispatching goroutine are not visible to
// it, and any scope the task begins lives on the task's own stack.
type Group struct {
	g   *errgroup.Group
	ctx context.Context
}

// WithGroup returns a Group and the context its tasks run under. The
// context is canceled when a task fails or Wait returns.
func WithGroup(ctx context.Context) (*Group, context.Context) {
	g, gctx := errgroup.WithContext(Detach(ctx))
	return &Group{g: g, ctx: gctx}, gctx
}

// SetLimit limits the number of tasks running at once. A negative value
// removes the limit.
func (g *Group) SetLimit(n int) {
	g.g.SetLimit(n)
}

// Go runs fn on a new goroutine with the group's detached context.
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.g.Go(func() error {
		return fn(g.ctx)
	})
}

// Wait blocks until all tasks return and reports the first error.
func (g *Group) Wait() error {
	return g.g.Wait()
}
