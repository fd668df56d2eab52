package arena

import (
	"github.com/cockroachdb/errors"
)

// Stack is the scope stack of one goroutine. Scopes begun on a stack form
// a singly linked list through their parents; the innermost active scope
// is Current. A Stack must not be shared between goroutines: work handed
// to another goroutine starts on its own stack (see Detach and Group).
type Stack struct {
	current *Scope
	cfg     config
}

// NewStack returns an empty stack. The options become the defaults of
// every scope begun on it.
func NewStack(opts ...Option) *Stack {
	return &Stack{cfg: newConfig(opts...)}
}

// Current returns the innermost active scope, or nil.
func (st *Stack) Current() *Scope {
	return st.current
}

// Depth returns the number of active scopes on the stack.
func (st *Stack) Depth() int {
	if st.current == nil {
		return 0
	}
	return st.current.depth
}

// Begin starts a new scope whose parent is the current scope and makes it
// current. Options override the stack defaults for this scope's arena.
//
// Pair every Begin with a deferred Dispose:
//
//	s := st.Begin()
//	defer s.Dispose()
func (st *Stack) Begin(opts ...Option) *Scope {
	cfg := st.cfg.with(opts...)
	s := &Scope{
		stack:  st,
		parent: st.current,
		arena:  newArena(cfg),
		cfg:    cfg,
		depth:  st.Depth() + 1,
	}
	st.current = s
	cfg.log().Debug("arena: scope begin", "depth", s.depth, "chunk_size", cfg.chunkSize)
	return s
}

// Scope brackets a region of transient allocation. Everything allocated
// from its arena is valid until Dispose; values that must outlive the
// scope have to be persisted first.
type Scope struct {
	stack    *Stack
	parent   *Scope
	arena    *Arena
	cfg      config
	depth    int
	disposed bool
}

// Parent returns the scope that was current when s began, or nil.
func (s *Scope) Parent() *Scope { return s.parent }

// Arena returns the scope's arena.
func (s *Scope) Arena() *Arena { return s.arena }

// Depth returns the nesting depth of s; the outermost scope has depth 1.
func (s *Scope) Depth() int { return s.depth }

// Disposed reports whether s has been disposed.
func (s *Scope) Disposed() bool { return s.disposed }

// Dispose releases the scope's arena and restores its parent as current.
// Disposing an already disposed scope does nothing.
//
// Disposing a scope that still has active inner scopes disposes those
// first, innermost first, so the stack never points at a disposed scope.
func (s *Scope) Dispose() {
	if s.disposed {
		return
	}
	st := s.stack
	if st.current != s {
		inner := 0
		for c := st.current; c != s; c = c.parent {
			if c == nil {
				panic(errors.AssertionFailedf("arena: scope at depth %d is not on its stack", s.depth))
			}
			inner++
		}
		s.cfg.log().Warn("arena: cascading scope disposal", "depth", s.depth, "inner", inner)
		for st.current != s {
			st.current.release()
		}
	}
	s.release()
}

// release disposes s, which must be the current scope of its stack.
func (s *Scope) release() {
	m := s.arena.Metrics()
	s.arena.Release()
	s.stack.current = s.parent
	s.disposed = true
	s.cfg.log().Debug("arena: scope dispose",
		"depth", s.depth,
		"chunks", m.NumChunks,
		"bytes", m.SizeInUse,
		"allocations", m.Allocations,
	)
}
