package arena

import "context"

type stackKey struct{}

// NewContext returns a child of ctx that carries st.
func NewContext(ctx context.Context, st *Stack) context.Context {
	return context.WithValue(ctx, stackKey{}, st)
}

// StackFrom returns the stack carried by ctx, or nil.
func StackFrom(ctx context.Context) *Stack {
	st, _ := ctx.Value(stackKey{}).(*Stack)
	return st
}

// Detach returns a child of ctx that carries no stack. Hand the detached
// context to work running on another goroutine; it observes no current
// scope and begins its own.
func Detach(ctx context.Context) context.Context {
	if StackFrom(ctx) == nil {
		return ctx
	}
	return context.WithValue(ctx, stackKey{}, (*Stack)(nil))
}

// Begin starts a scope on the stack carried by ctx. If ctx carries no
// stack, a new one is created and attached to the returned context.
//
//	ctx, s := arena.Begin(ctx)
//	defer s.Dispose()
func Begin(ctx context.Context, opts ...Option) (context.Context, *Scope) {
	st := StackFrom(ctx)
	if st == nil {
		st = NewStack()
		ctx = NewContext(ctx, st)
	}
	return ctx, st.Begin(opts...)
}

// Current returns the active scope of the stack carried by ctx, or nil.
func Current(ctx context.Context) *Scope {
	st := StackFrom(ctx)
	if st == nil {
		return nil
	}
	return st.Current()
}
