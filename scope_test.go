package arena

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackBeginDispose(t *testing.T) {
	st := NewStack()
	assert.Nil(t, st.Current(), "a new stack has no current scope")
	assert.Zero(t, st.Depth())

	s1 := st.Begin()
	assert.Same(t, s1, st.Current())
	assert.Nil(t, s1.Parent())
	assert.Equal(t, 1, s1.Depth())

	s2 := st.Begin()
	assert.Same(t, s2, st.Current())
	assert.Same(t, s1, s2.Parent())
	assert.Equal(t, 2, st.Depth())

	s2.Dispose()
	assert.True(t, s2.Disposed())
	assert.True(t, s2.Arena().Released())
	assert.Same(t, s1, st.Current())

	s1.Dispose()
	assert.Nil(t, st.Current())
	assert.Zero(t, st.Depth())
}

func TestScopeLIFORestoresParent(t *testing.T) {
	// Nested runs of begin/dispose at varying depths; after every dispose
	// the current scope is the one active before the matching begin.
	st := NewStack()
	var open []*Scope
	before := map[*Scope]*Scope{}

	ops := []bool{true, true, false, true, true, true, false, false, true, false, false, false}
	for i, begin := range ops {
		if begin {
			prev := st.Current()
			s := st.Begin()
			before[s] = prev
			open = append(open, s)
			continue
		}
		s := open[len(open)-1]
		open = open[:len(open)-1]
		s.Dispose()
		require.Same(t, before[s], st.Current(), "op %d", i)
	}
	assert.Empty(t, open)
	assert.Nil(t, st.Current())
}

func TestScopeDisposeIdempotent(t *testing.T) {
	st := NewStack()
	outer := st.Begin()
	s := st.Begin()
	s.Dispose()
	inner := st.Begin()

	// A second dispose of s must not pop inner.
	s.Dispose()
	assert.Same(t, inner, st.Current())

	inner.Dispose()
	outer.Dispose()
	assert.Nil(t, st.Current())
}

func TestScopeCascadingDispose(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	st := NewStack(WithLogger(logger))
	s1 := st.Begin()
	s2 := st.Begin()
	s3 := st.Begin()
	s4 := st.Begin()

	// Out of order: disposing s2 takes s4 and s3 with it.
	s2.Dispose()
	assert.Same(t, s1, st.Current())
	for _, s := range []*Scope{s2, s3, s4} {
		assert.True(t, s.Disposed())
		assert.True(t, s.Arena().Released())
	}
	assert.False(t, s1.Disposed())
	assert.Contains(t, logs.String(), "cascading scope disposal")
	assert.Contains(t, logs.String(), "inner=2")

	// Late disposes of the cascaded scopes are no-ops.
	s4.Dispose()
	s3.Dispose()
	assert.Same(t, s1, st.Current())

	s1.Dispose()
	assert.Nil(t, st.Current())
}

func TestScopeDisposeForeignPanics(t *testing.T) {
	st := NewStack()
	s := st.Begin()

	// Simulate a corrupted stack: s is active but unreachable from current.
	st.current = nil
	assert.Panics(t, s.Dispose)
}

func TestScopeOptionsOverrideStack(t *testing.T) {
	st := NewStack(WithChunkSize(2048))
	s := st.Begin()
	assert.Equal(t, 2048, s.Arena().ChunkSize())

	inner := st.Begin(WithChunkSize(512), WithoutChunkCache())
	assert.Equal(t, 512, inner.Arena().ChunkSize())
	assert.Nil(t, inner.Arena().cache)

	inner.Dispose()
	s.Dispose()
}

func TestScopeLogsLifecycle(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	st := NewStack()
	s := st.Begin()
	_, err := MemoryOn[int64](st, 4)
	require.NoError(t, err)
	s.Dispose()

	out := logs.String()
	assert.Contains(t, out, "scope begin")
	assert.Contains(t, out, "scope dispose")
	assert.Contains(t, out, "bytes=32")
	assert.Contains(t, out, "allocations=1")
}
