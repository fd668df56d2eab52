package arena

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWithoutScope(t *testing.T) {
	ctx := context.Background()
	for _, n := range []int{0, 1, 7, 10_000} {
		buf, err := Memory[vec](ctx, n)
		require.NoError(t, err)
		assert.Equal(t, n, buf.Len())
		assert.Len(t, buf.Slice(), n)
		assert.Equal(t, OriginHeap, buf.Origin())
	}
}

func TestMemoryInScope(t *testing.T) {
	ctx, s := Begin(context.Background())
	defer s.Dispose()

	for _, n := range []int{0, 1, 7, 10_000} {
		buf, err := Memory[vec](ctx, n)
		require.NoError(t, err)
		assert.Equal(t, n, buf.Len())
		assert.Equal(t, OriginArena, buf.Origin())
		for _, v := range buf.Slice() {
			require.Zero(t, v)
		}
	}
	assert.Equal(t, 3, s.Arena().Allocations())
}

func TestMemoryNegativeCount(t *testing.T) {
	_, err := Memory[int](context.Background(), -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	ctx, s := Begin(context.Background())
	defer s.Dispose()
	_, err = Memory[int](ctx, -5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestMemoryOverflow(t *testing.T) {
	n := math.MaxInt/16 + 1 // vec is 16 bytes

	_, err := Memory[vec](context.Background(), n)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "heap path: %v", err)

	ctx, s := Begin(context.Background())
	defer s.Dispose()
	_, err = Memory[vec](ctx, n)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "arena path: %v", err)
	assert.Zero(t, s.Arena().NumChunks())

	// Pointerful types always take the heap path.
	_, err = Memory[string](ctx, math.MaxInt)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "pointer path: %v", err)
}

func TestMemoryPointerTypesUseHeap(t *testing.T) {
	ctx, s := Begin(context.Background())
	defer s.Dispose()

	buf, err := Memory[string](ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, OriginHeap, buf.Origin())
	assert.Zero(t, s.Arena().NumChunks())
}

func TestMemoryAfterDisposeFallsBackToHeap(t *testing.T) {
	ctx, s := Begin(context.Background())
	s.Dispose()

	buf, err := Memory[int](ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, OriginHeap, buf.Origin())
}

func TestMemoryOn(t *testing.T) {
	buf, err := MemoryOn[int](nil, 2)
	require.NoError(t, err)
	assert.Equal(t, OriginHeap, buf.Origin())

	st := NewStack()
	buf, err = MemoryOn[int](st, 2)
	require.NoError(t, err)
	assert.Equal(t, OriginHeap, buf.Origin())

	s := st.Begin()
	defer s.Dispose()
	buf, err = MemoryOn[int](st, 2)
	require.NoError(t, err)
	assert.Equal(t, OriginArena, buf.Origin())
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "heap", OriginHeap.String())
	assert.Equal(t, "arena", OriginArena.String())
	assert.Equal(t, "pool", OriginPool.String())
	assert.Equal(t, "unknown", Origin(42).String())
}

func TestContextStack(t *testing.T) {
	base := context.Background()
	assert.Nil(t, StackFrom(base))
	assert.Nil(t, Current(base))

	ctx, s1 := Begin(base)
	st := StackFrom(ctx)
	require.NotNil(t, st)
	assert.Same(t, s1, Current(ctx))
	assert.Nil(t, Current(base), "the parent context is unaffected")

	// Nested begins reuse the stack already in the context.
	ctx2, s2 := Begin(ctx)
	assert.Same(t, st, StackFrom(ctx2))
	assert.Same(t, s2, Current(ctx))

	s2.Dispose()
	assert.Same(t, s1, Current(ctx))
	s1.Dispose()
	assert.Nil(t, Current(ctx))
}

func TestNewContext(t *testing.T) {
	st := NewStack()
	ctx := NewContext(context.Background(), st)
	s := st.Begin()
	assert.Same(t, s, Current(ctx))
	s.Dispose()
}

func TestDetach(t *testing.T) {
	base := context.Background()
	assert.Equal(t, base, Detach(base))

	ctx, s := Begin(base)
	defer s.Dispose()

	detached := Detach(ctx)
	assert.Nil(t, StackFrom(detached))
	assert.Nil(t, Current(detached))

	buf, err := Memory[int](detached, 1)
	require.NoError(t, err)
	assert.Equal(t, OriginHeap, buf.Origin())

	// A scope begun on the detached context does not touch the original stack.
	dctx, ds := Begin(detached)
	assert.Same(t, ds, Current(dctx))
	assert.Same(t, s, Current(ctx))
	ds.Dispose()
}

func TestGroupTasksSeeNoScope(t *testing.T) {
	ctx, s := Begin(context.Background())
	defer s.Dispose()

	var mu sync.Mutex
	seen := map[int]*Scope{}
	g, _ := WithGroup(ctx)
	for i := 0; i < 8; i++ {
		g.Go(func(ctx context.Context) error {
			cur := Current(ctx)
			// Each task may open scopes of its own.
			tctx, ts := Begin(ctx)
			defer ts.Dispose()
			if _, err := Memory[int](tctx, 128); err != nil {
				return err
			}
			mu.Lock()
			seen[i] = cur
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, seen, 8)
	for i, cur := range seen {
		assert.Nil(t, cur, "task %d inherited a scope", i)
	}
	assert.Same(t, s, Current(ctx))
}

func TestGroupReportsFirstError(t *testing.T) {
	g, gctx := WithGroup(context.Background())
	g.SetLimit(2)
	boom := errors.New("boom")
	g.Go(func(context.Context) error { return boom })
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	assert.ErrorIs(t, g.Wait(), boom)
	assert.Error(t, gctx.Err())
}
