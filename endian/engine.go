// Package endian provides the byte order engines used by pqpage decoders.
//
// Parquet mixes two byte orders in a single page:
//
//   - PLAIN values, V1 level length prefixes and hybrid RLE run values are
//     little-endian.
//   - The deprecated BIT_PACKED encoding packs values MSB-first across
//     big-endian 32-bit words.
//
// Both are exposed through EndianEngine so decoders can take the order as a
// value instead of hard-coding binary.LittleEndian calls.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Engines are stateless.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine for PLAIN values and length prefixes.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the engine for BIT_PACKED words.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Uint32Padded reads a 32-bit word from b using engine, treating bytes past the
// end of b as zero. It never reads out of bounds.
func Uint32Padded(engine EndianEngine, b []byte) uint32 {
	if len(b) >= 4 {
		return engine.Uint32(b)
	}

	var word [4]byte
	copy(word[:], b)

	return engine.Uint32(word[:])
}

// UintN reads an n-byte (0 <= n <= 4) little-endian unsigned integer from b.
//
// Hybrid RLE stores run values in ceil(bitWidth/8) bytes, so the width is not
// always a power of two.
func UintN(b []byte, n int) uint32 {
	var v uint32
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}

	return v
}
