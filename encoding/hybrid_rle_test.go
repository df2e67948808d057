package encoding

import (
	"testing"

	"github.com/parquet-go/parquet-go/encoding/rle"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/pqpage/errs"
)

func TestHybridRunDecoder(t *testing.T) {
	var data []byte
	data = append(data, rleRun(5, 7, 3)...)
	data = append(data, 0x03, 0b10001000, 0b11000110, 0b11111010)

	d, err := NewHybridRunDecoder(data, 3)
	require.NoError(t, err)

	run, ok := d.Next()
	require.True(t, ok)
	require.Equal(t, Run{Kind: RunRLE, Length: 5, Value: 7}, run)

	run, ok = d.Next()
	require.True(t, ok)
	require.Equal(t, RunBitPacked, run.Kind)
	require.Equal(t, 8, run.Length)
	require.Equal(t, []byte{0b10001000, 0b11000110, 0b11111010}, run.Packed)

	_, ok = d.Next()
	require.False(t, ok)
	require.NoError(t, d.Err())
	require.Empty(t, d.Remaining())
}

func TestHybridRunDecoder_Malformed(t *testing.T) {
	t.Run("unterminated header", func(t *testing.T) {
		d, err := NewHybridRunDecoder([]byte{0x80, 0x80}, 3)
		require.NoError(t, err)

		_, ok := d.Next()
		require.False(t, ok)
		require.ErrorIs(t, d.Err(), errs.ErrInvalidRunHeader)
	})

	t.Run("truncated rle value", func(t *testing.T) {
		d, err := NewHybridRunDecoder([]byte{0x04, 0x01}, 16)
		require.NoError(t, err)

		_, ok := d.Next()
		require.False(t, ok)
		require.ErrorIs(t, d.Err(), errs.ErrTruncatedRun)
	})

	t.Run("truncated bit-packed run", func(t *testing.T) {
		d, err := NewHybridRunDecoder([]byte{0x05, 0xff}, 3)
		require.NoError(t, err)

		run, ok := d.Next()
		require.True(t, ok)
		require.Equal(t, 16, run.Length)
		require.Equal(t, []byte{0xff}, run.Packed)
	})

	t.Run("bit width above 32", func(t *testing.T) {
		_, err := NewHybridRunDecoder(nil, 33)
		require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
	})
}

func TestHybridRLEDecoder_Fixtures(t *testing.T) {
	t.Run("bit-packed run", func(t *testing.T) {
		d, err := NewHybridRLEDecoder([]byte{0x03, 0b10001000, 0b11000110, 0b11111010}, 3, 8)
		require.NoError(t, err)
		require.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, Collect[uint32](d))
		require.NoError(t, d.Err())
	})

	t.Run("padding of the last group is dropped", func(t *testing.T) {
		d, err := NewHybridRLEDecoder([]byte{0x03, 0b10001000, 0b11000110, 0b11111010}, 3, 5)
		require.NoError(t, err)
		require.Equal(t, []uint32{0, 1, 2, 3, 4}, Collect[uint32](d))
	})

	t.Run("mixed runs", func(t *testing.T) {
		var data []byte
		data = append(data, rleRun(4, 300, 9)...)
		data = append(data, bitPackedRun([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 9)...)
		data = append(data, rleRun(3, 0, 9)...)

		d, err := NewHybridRLEDecoder(data, 9, 4+16+3)
		require.NoError(t, err)

		expected := []uint32{300, 300, 300, 300, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 0, 0, 0, 0, 0, 0, 0, 0, 0}
		require.Equal(t, expected, Collect[uint32](d))
		require.NoError(t, d.Err())
	})

	t.Run("width 32 rle value", func(t *testing.T) {
		d, err := NewHybridRLEDecoder(rleRun(2, 0xdeadbeef, 32), 32, 2)
		require.NoError(t, err)
		require.Equal(t, []uint32{0xdeadbeef, 0xdeadbeef}, Collect[uint32](d))
	})

	t.Run("runs end early", func(t *testing.T) {
		d, err := NewHybridRLEDecoder(rleRun(3, 1, 1), 1, 5)
		require.NoError(t, err)
		require.Equal(t, []uint32{1, 1, 1}, Collect[uint32](d))
		require.Equal(t, 0, d.Len())
		require.ErrorIs(t, d.Err(), errs.ErrTruncatedRun)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := NewHybridRLEDecoder(nil, 2, 1)
		require.ErrorIs(t, err, errs.ErrEmptyBuffer)
	})
}

func TestHybridRLEDecoder_MatchesParquetGo(t *testing.T) {
	rng := newRand()

	for _, numBits := range []uint8{1, 2, 3, 5, 8, 13, 17, 24, 31} {
		values := randomValues(rng, 1000, numBits)
		// long repeats force RLE runs next to bit-packed ones
		for i := 200; i < 400; i++ {
			values[i] = values[200]
		}

		src := make([]int32, len(values))
		for i, v := range values {
			src[i] = int32(v)
		}

		enc := &rle.Encoding{BitWidth: int(numBits)}
		data, err := enc.EncodeInt32(nil, src)
		require.NoError(t, err)

		d, err := NewHybridRLEDecoder(data, numBits, len(values))
		require.NoError(t, err)
		require.Equal(t, values, Collect[uint32](d), "width %d", numBits)
		require.NoError(t, d.Err())
	}
}

func TestHybridRLEDecoder_Skip(t *testing.T) {
	rng := newRand()
	values := randomValues(rng, 500, 6)
	for i := 100; i < 250; i++ {
		values[i] = 9
	}

	var data []byte
	data = append(data, bitPackedRun(values[:100], 6)...)
	data = append(data, rleRun(150, 9, 6)...)
	data = append(data, bitPackedRun(values[250:], 6)...)

	for _, skip := range []int{0, 3, 8, 99, 100, 101, 249, 250, 255, 499, 500, 1000} {
		d, err := NewHybridRLEDecoder(data, 6, len(values))
		require.NoError(t, err)

		expected := min(skip, len(values))
		require.Equal(t, expected, d.Skip(skip))
		require.Equal(t, len(values)-expected, d.Len())
		require.Equal(t, values[expected:], Collect[uint32](d), "skip %d", skip)
	}

	t.Run("decode batches", func(t *testing.T) {
		d, err := NewHybridRLEDecoder(data, 6, len(values))
		require.NoError(t, err)

		buf := make([]uint32, 33)
		var got []uint32
		for {
			n := d.Decode(buf)
			if n == 0 {
				break
			}
			got = append(got, buf[:n]...)
		}
		require.Equal(t, values, got)
	})
}

func TestNewDictIndicesDecoder(t *testing.T) {
	t.Run("bit width prefix", func(t *testing.T) {
		d, err := NewDictIndicesDecoder([]byte{3, 0x03, 0b10001000, 0b11000110, 0b11111010}, 8)
		require.NoError(t, err)
		require.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, Collect[uint32](d))
	})

	t.Run("bit width above 32", func(t *testing.T) {
		_, err := NewDictIndicesDecoder([]byte{33, 0x02, 0x00}, 1)
		require.ErrorIs(t, err, errs.ErrInvalidBitWidth)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := NewDictIndicesDecoder(nil, 1)
		require.ErrorIs(t, err, errs.ErrEmptyBuffer)

		d, err := NewDictIndicesDecoder(nil, 0)
		require.NoError(t, err)
		require.Equal(t, 0, d.Len())
	})

	t.Run("single entry dictionary", func(t *testing.T) {
		d, err := NewDictIndicesDecoder([]byte{0}, 4)
		require.NoError(t, err)
		require.Equal(t, []uint32{0, 0, 0, 0}, Collect[uint32](d))
		require.NoError(t, d.Err())
	})
}

func BenchmarkHybridRLEDecoder(b *testing.B) {
	rng := newRand()
	values := randomValues(rng, 4096, 10)
	src := make([]int32, len(values))
	for i, v := range values {
		src[i] = int32(v)
	}
	enc := &rle.Encoding{BitWidth: 10}
	data, _ := enc.EncodeInt32(nil, src)

	b.ReportAllocs()
	for b.Loop() {
		d, _ := NewHybridRLEDecoder(data, 10, len(values))
		for {
			if _, ok := d.Next(); !ok {
				break
			}
		}
	}
}
