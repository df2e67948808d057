package encoding

import (
	"bytes"
	"testing"

	"github.com/arloliu/pqpage/errs"
	"github.com/stretchr/testify/require"
)

func TestNewBitPackedDecoder_Errors(t *testing.T) {
	t.Run("bit width above 32", func(t *testing.T) {
		_, err := NewBitPackedDecoder([]byte{0}, 33, 1)
		require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := NewBitPackedDecoder([]byte{0}, 3, -1)
		require.ErrorIs(t, err, errs.ErrInvalidLength)
	})

	t.Run("empty buffer with values requested", func(t *testing.T) {
		_, err := NewBitPackedDecoder(nil, 3, 1)
		require.ErrorIs(t, err, errs.ErrEmptyBuffer)
	})

	t.Run("empty buffer with zero length", func(t *testing.T) {
		d, err := NewBitPackedDecoder(nil, 3, 0)
		require.NoError(t, err)
		require.Equal(t, 0, d.Len())

		_, ok := d.Next()
		require.False(t, ok)
	})

	t.Run("zero width needs no data", func(t *testing.T) {
		d, err := NewBitPackedDecoder(nil, 0, 40)
		require.NoError(t, err)
		require.Equal(t, make([]uint32, 40), Collect[uint32](d))
	})
}

func TestBitPackedDecoder_Fixtures(t *testing.T) {
	seq := []byte{0b00000101, 0b00111001, 0b01110111}

	tests := []struct {
		name     string
		data     []byte
		numBits  uint8
		length   int
		expected []uint32
	}{
		{
			name:     "width 3 single group",
			data:     seq,
			numBits:  3,
			length:   8,
			expected: []uint32{0, 1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:    "width 3 across blocks",
			data:    bytes.Repeat(seq, 7),
			numBits: 3,
			length:  56,
			expected: func() []uint32 {
				out := make([]uint32, 0, 56)
				for range 7 {
					out = append(out, 0, 1, 2, 3, 4, 5, 6, 7)
				}

				return out
			}(),
		},
		{
			name:     "width 1",
			data:     []byte{0b01100000},
			numBits:  1,
			length:   4,
			expected: []uint32{0, 1, 1, 0},
		},
		{
			name:     "width 8",
			data:     []byte{255, 0, 1},
			numBits:  8,
			length:   3,
			expected: []uint32{255, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewBitPackedDecoder(tt.data, tt.numBits, tt.length)
			require.NoError(t, err)
			require.Equal(t, tt.length, d.Len())
			require.Equal(t, tt.expected, Collect[uint32](d))
			require.Equal(t, 0, d.Len())

			_, ok := d.Next()
			require.False(t, ok)
		})
	}
}

func TestBitPackedDecoder_RoundTrip(t *testing.T) {
	rng := newRand()

	for numBits := range uint8(MaxBitWidth + 1) {
		for _, length := range []int{1, 7, 31, 32, 33, 64, 100, 257} {
			values := randomValues(rng, length, numBits)
			data := packMSB(values, numBits)

			d, err := NewBitPackedDecoder(data, numBits, length)
			require.NoError(t, err)
			require.Equal(t, values, Collect[uint32](d), "width %d length %d", numBits, length)
		}
	}
}

func TestBitPackedDecoder_MissingBytesDecodeAsZero(t *testing.T) {
	values := make([]uint32, 40)
	for i := range values {
		values[i] = uint32(i + 1)
	}
	data := packMSB(values, 8)[:33]

	d, err := NewBitPackedDecoder(data, 8, 40)
	require.NoError(t, err)

	got := Collect[uint32](d)
	require.Len(t, got, 40)
	require.Equal(t, values[:33], got[:33])
	require.Equal(t, make([]uint32, 7), got[33:])
}

func TestBitPackedDecoder_Skip(t *testing.T) {
	rng := newRand()
	values := randomValues(rng, 300, 5)
	data := packMSB(values, 5)

	for _, skip := range []int{0, 1, 5, 31, 32, 33, 64, 100, 299, 300, 500} {
		d, err := NewBitPackedDecoder(data, 5, len(values))
		require.NoError(t, err)

		skipped := d.Skip(skip)
		expected := min(skip, len(values))
		require.Equal(t, expected, skipped)
		require.Equal(t, len(values)-expected, d.Len())
		require.Equal(t, values[expected:], append([]uint32{}, Collect[uint32](d)...), "skip %d", skip)
	}

	t.Run("interleaved", func(t *testing.T) {
		d, err := NewBitPackedDecoder(data, 5, len(values))
		require.NoError(t, err)

		pos := 0
		for pos < len(values) {
			v, ok := d.Next()
			require.True(t, ok)
			require.Equal(t, values[pos], v)
			pos++
			pos += d.Skip(pos % 37)
		}
		require.Equal(t, 0, d.Len())
	})
}

func TestBitPackedDecoder_Decode(t *testing.T) {
	rng := newRand()
	values := randomValues(rng, 150, 11)
	data := packMSB(values, 11)

	d, err := NewBitPackedDecoder(data, 11, len(values))
	require.NoError(t, err)

	_, _ = d.Next()
	buf := make([]uint32, 64)
	var got []uint32
	for {
		n := d.Decode(buf)
		if n == 0 {
			break
		}
		got = append(got, buf[:n]...)
	}
	require.Equal(t, values[1:], got)
}

func BenchmarkBitPackedDecoder(b *testing.B) {
	rng := newRand()
	values := randomValues(rng, 4096, 7)
	data := packMSB(values, 7)
	buf := make([]uint32, 256)

	b.Run("Next", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			d, _ := NewBitPackedDecoder(data, 7, len(values))
			for {
				if _, ok := d.Next(); !ok {
					break
				}
			}
		}
	})

	b.Run("Decode", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			d, _ := NewBitPackedDecoder(data, 7, len(values))
			for d.Decode(buf) > 0 {
			}
		}
	})
}
