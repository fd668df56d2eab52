// Package arena implements scoped, per-goroutine arena allocation for
// transient computations.
//
// # Overview
//
// A Scope brackets a region of code during which allocations made through
// Memory are served from a chunked bump allocator (Arena) instead of the
// heap. Disposing the scope reclaims everything it allocated in bulk.
// Scopes nest: each goroutine owns a Stack whose current scope is the
// innermost one begun and not yet disposed.
//
// # Basic Usage
//
//	ctx, s := arena.Begin(ctx)
//	defer s.Dispose()
//
//	buf, err := arena.Memory[Point](ctx, 4) // arena-backed inside the scope
//
// The same Memory call outside any scope returns ordinary heap memory, so
// library code does not need to know whether it runs in a scope.
//
// # Escaping a Scope
//
// Arena memory is invalid once its scope is disposed. A result that must
// outlive the scope is persisted: Persist copies it into a buffer rented
// from a shared Pool and returns the rebuilt value along with a Lease.
//
//	poly, lease := arena.Persist[Point](poly)
//	defer lease.Dispose()
//
// # Goroutines
//
// Go has no goroutine-local storage, so the stack travels in a
// context.Context. A stack belongs to the goroutine that created it. Work
// started on another goroutine must receive a Detach-ed context, or be
// started through a Group, and then sees no current scope. A plain
// go f(ctx) shares the caller's stack and its unsynchronized arena.
//
// # Memory Layout
//
// The arena allocates memory in chunks (default 64KB). When a chunk cannot
// hold a request, a new chunk of max(chunk size, request) bytes becomes the
// bump target. Allocations are aligned to the pointer size. Chunks of the
// default size are recycled through a process-wide cache when a scope is
// disposed.
//
// # Important Notes
//
//   - Arena memory is only valid while its scope is active
//   - Only pointer-free element types are arena-backed; others use the heap
//   - Disposing an outer scope disposes any inner scopes still active
//   - A Lease must be disposed exactly once
package arena
