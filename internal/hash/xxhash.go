// Package hash computes the xxHash64 digests Parquet bloom filters are keyed by.
//
// Parquet hashes the PLAIN encoding of a value with xxHash64 and seed 0.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Bytes returns the xxHash64 of b. Byte arrays are hashed without their
// length prefix.
func Bytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// String returns the xxHash64 of s.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint32 returns the xxHash64 of the 4-byte little-endian encoding of v.
func Uint32(v uint32) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)

	return xxhash.Sum64(b[:])
}

// Uint64 returns the xxHash64 of the 8-byte little-endian encoding of v.
func Uint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)

	return xxhash.Sum64(b[:])
}

// Float32 hashes the IEEE 754 bits of v.
func Float32(v float32) uint64 {
	return Uint32(math.Float32bits(v))
}

// Float64 hashes the IEEE 754 bits of v.
func Float64(v float64) uint64 {
	return Uint64(math.Float64bits(v))
}
