package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	t.Run("write and reset", func(t *testing.T) {
		bb := NewByteBuffer(8)
		n, err := bb.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, 5, bb.Len())
		require.Equal(t, []byte("hello"), bb.Bytes())

		bb.Reset()
		require.Equal(t, 0, bb.Len())
		require.Equal(t, 8, cap(bb.B))
	})

	t.Run("grow small buffer", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte{1, 2, 3})
		bb.Grow(10)
		require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 10)
		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})

	t.Run("grow is a no-op with spare capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		before := cap(bb.B)
		bb.Grow(32)
		require.Equal(t, before, cap(bb.B))
	})

	t.Run("grow large request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(SnapshotBufferDefaultSize * 3)
		require.GreaterOrEqual(t, cap(bb.B), SnapshotBufferDefaultSize*3)
	})

	t.Run("write to", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abc"))
		var out bytes.Buffer
		n, err := bb.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, int64(3), n)
		require.Equal(t, "abc", out.String())
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())

		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("put tolerates nil", func(t *testing.T) {
		p := NewByteBufferPool(32, 64)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Grow(1024)
		require.NotPanics(t, func() { p.Put(bb) })
	})

	t.Run("default snapshot pool", func(t *testing.T) {
		bb := GetSnapshotBuffer()
		require.NotNil(t, bb)
		require.GreaterOrEqual(t, cap(bb.B), 0)
		PutSnapshotBuffer(bb)
	})
}
