// Package bitpack unpacks the LSB-first bit-packed groups used by bit-packed runs
// of the Parquet hybrid RLE encoding.
//
// A group holds 8 values of bitWidth bits each and therefore occupies exactly
// bitWidth bytes. Values are packed starting at the least significant bit of
// the first byte.
package bitpack

// GroupSize is the number of values in one bit-packed group.
const GroupSize = 8

// Unpack8 unpacks one group of 8 values from src into dst.
//
// src should hold bitWidth bytes; shorter input is zero-padded so a truncated
// final group yields zeros for its missing bits. bitWidth must be in [0, 32].
func Unpack8(dst *[GroupSize]uint32, src []byte, bitWidth uint8) {
	if bitWidth == 0 {
		*dst = [GroupSize]uint32{}
		return
	}

	var scratch [32]byte
	if len(src) < int(bitWidth) {
		copy(scratch[:], src)
		src = scratch[:bitWidth]
	}

	w := uint(bitWidth)
	mask := uint64(1)<<w - 1
	for i := range GroupSize {
		bit := uint(i) * w
		start := bit >> 3
		// at most 7 + 32 bits are needed, so five bytes always suffice
		end := min(start+5, uint(bitWidth))

		var word uint64
		for j := end; j > start; j-- {
			word = word<<8 | uint64(src[j-1])
		}

		dst[i] = uint32((word >> (bit & 7)) & mask)
	}
}

// Bit returns the bit at position i of an LSB-first bitmap.
func Bit(bitmap []byte, i int) bool {
	return bitmap[i>>3]>>(uint(i)&7)&1 == 1
}

// ByteCount returns the number of bytes needed to hold n values of bitWidth bits.
func ByteCount(n int, bitWidth uint8) int {
	return (n*int(bitWidth) + 7) / 8
}
