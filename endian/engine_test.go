package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestUint32Padded(t *testing.T) {
	be := GetBigEndianEngine()
	le := GetLittleEndianEngine()

	t.Run("Full word", func(t *testing.T) {
		b := []byte{0x01, 0x02, 0x03, 0x04, 0xff}
		require.Equal(t, uint32(0x01020304), Uint32Padded(be, b))
		require.Equal(t, uint32(0x04030201), Uint32Padded(le, b))
	})

	t.Run("Short word is zero padded", func(t *testing.T) {
		b := []byte{0x05, 0x39, 0x77}
		require.Equal(t, uint32(0x05397700), Uint32Padded(be, b))
		require.Equal(t, uint32(0x00773905), Uint32Padded(le, b))
	})

	t.Run("Empty", func(t *testing.T) {
		require.Equal(t, uint32(0), Uint32Padded(be, nil))
	})
}

func TestUintN(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		n    int
		want uint32
	}{
		{"zero width", []byte{0xff}, 0, 0},
		{"one byte", []byte{0x07}, 1, 7},
		{"two bytes", []byte{0x34, 0x12}, 2, 0x1234},
		{"three bytes", []byte{0x56, 0x34, 0x12, 0xff}, 3, 0x123456},
		{"four bytes", []byte{0x78, 0x56, 0x34, 0x12}, 4, 0x12345678},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, UintN(tt.b, tt.n))
		})
	}
}
