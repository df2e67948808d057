package encoding

import (
	"encoding/binary"
	"math/rand/v2"
)

// packMSB packs values MSB-first into a byte stream, the BIT_PACKED layout.
func packMSB(values []uint32, bitWidth uint8) []byte {
	out := make([]byte, (len(values)*int(bitWidth)+7)/8)
	bit := 0
	for _, v := range values {
		for i := int(bitWidth) - 1; i >= 0; i-- {
			if v>>uint(i)&1 == 1 {
				out[bit/8] |= 0x80 >> uint(bit%8)
			}
			bit++
		}
	}

	return out
}

// packLSB packs values LSB-first, the layout of hybrid RLE bit-packed runs.
func packLSB(values []uint32, bitWidth uint8) []byte {
	out := make([]byte, (len(values)*int(bitWidth)+7)/8)
	bit := 0
	for _, v := range values {
		for i := range int(bitWidth) {
			if v>>uint(i)&1 == 1 {
				out[bit/8] |= 1 << uint(bit%8)
			}
			bit++
		}
	}

	return out
}

// rleRun encodes an RLE run of count copies of value.
func rleRun(count int, value uint32, bitWidth uint8) []byte {
	out := binary.AppendUvarint(nil, uint64(count)<<1)
	for i := range (int(bitWidth) + 7) / 8 {
		out = append(out, byte(value>>(8*uint(i))))
	}

	return out
}

// bitPackedRun encodes values, padded to a multiple of 8, as one bit-packed run.
func bitPackedRun(values []uint32, bitWidth uint8) []byte {
	groups := (len(values) + 7) / 8
	padded := make([]uint32, groups*8)
	copy(padded, values)

	out := binary.AppendUvarint(nil, uint64(groups)<<1|1)

	return append(out, packLSB(padded, bitWidth)...)
}

func randomValues(rng *rand.Rand, n int, bitWidth uint8) []uint32 {
	values := make([]uint32, n)
	if bitWidth == 0 {
		return values
	}

	mask := uint32(1<<uint(bitWidth) - 1)
	if bitWidth == 32 {
		mask = ^uint32(0)
	}
	for i := range values {
		values[i] = rng.Uint32() & mask
	}

	return values
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(20240601, 42))
}

// pullOnly hides any Skipper implementation of the wrapped iterator.
type pullOnly[T any] struct {
	it Iterator[T]
}

func (p *pullOnly[T]) Next() (T, bool) { return p.it.Next() }

func (p *pullOnly[T]) Len() int { return p.it.Len() }
