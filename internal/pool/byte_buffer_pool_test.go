package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("Sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.B = append(bb.B, 1, 2, 3)
		before := &bb.B[0]

		bb.Grow(50)

		require.Same(t, before, &bb.B[0])
		require.Equal(t, 100, bb.Cap())
	})

	t.Run("Small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3)

		bb.Grow(100)

		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
		require.GreaterOrEqual(t, bb.Cap(), 3+PageBufferDefaultSize)
	})

	t.Run("Grows by at least required bytes", func(t *testing.T) {
		bb := NewByteBuffer(8)

		bb.Grow(PageBufferDefaultSize * 3)

		require.GreaterOrEqual(t, bb.Cap(), PageBufferDefaultSize*3)
	})

	t.Run("Large buffer grows by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(8 * PageBufferDefaultSize)
		bb.B = bb.B[:bb.Cap()]

		bb.Grow(1)

		require.Equal(t, 10*PageBufferDefaultSize, bb.Cap())
	})
}

func TestByteBuffer_Sized(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, 9, 9)

	b := bb.Sized(1000)
	require.Empty(t, b)
	require.GreaterOrEqual(t, cap(b), 1000)

	b = append(b, 1, 2, 3)
	bb.SetBytes(b)
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	require.Equal(t, 3, bb.Len())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Returned buffers are reset", func(t *testing.T) {
		p := NewByteBufferPool(16, 1024)
		bb := p.Get()
		bb.B = append(bb.B, 1, 2, 3)
		p.Put(bb)

		got := p.Get()
		require.Equal(t, 0, got.Len())
	})

	t.Run("Oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := NewByteBuffer(64)
		p.Put(bb)

		got := p.Get()
		require.LessOrEqual(t, got.Cap(), 32)
	})

	t.Run("Nil put is ignored", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		require.NotPanics(t, func() { p.Put(nil) })
	})
}

func TestPageBufferPool(t *testing.T) {
	bb := GetPageBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), 0)
	PutPageBuffer(bb)
}
