// Package bloom probes Parquet split-block bloom filters.
//
// A column chunk may carry a bloom filter over the PLAIN encoding of its
// values. Probing it before reading the chunk's pages lets a reader skip row
// groups that cannot hold a looked-up value.
//
// The filter is an array of 32-byte blocks, each made of eight little-endian
// 32-bit words. A value hash selects one block from its upper 32 bits, and its
// lower 32 bits set one bit in every word of that block.
//
// Example:
//
//	filter, err := bloom.New(bitset)
//	if err != nil {
//	    return err
//	}
//	if !filter.Contains(bloom.HashInt64(42)) {
//	    // skip the row group
//	}
package bloom

import (
	"math"

	"github.com/arloliu/pqpage/endian"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/internal/hash"
)

const (
	// BlockSize is the size of one filter block in bytes.
	BlockSize = 32
	// MinSize and MaxSize bound the bitset sizes returned by OptimalSize.
	MinSize = BlockSize
	MaxSize = 128 * 1024 * 1024

	wordsPerBlock = 8
)

var salt = [wordsPerBlock]uint32{
	0x47b6137b, 0x44974d91, 0x8824ad5b, 0xa2b7289d,
	0x705495c7, 0x2df1424b, 0x9efc4947, 0x5c6bfb31,
}

// Filter is a split-block bloom filter over a bitset.
//
// Note: Insert is NOT thread-safe; Contains may run concurrently with other
// Contains calls.
type Filter struct {
	bitset    []byte
	numBlocks uint64
}

// New wraps a bitset read from a column chunk. The bitset is borrowed, not
// copied.
//
// Returns:
//   - *Filter: Filter over bitset
//   - error: ErrInvalidBloomFilter when len(bitset) is not a positive multiple
//     of BlockSize
func New(bitset []byte) (*Filter, error) {
	if len(bitset) == 0 || len(bitset)%BlockSize != 0 {
		return nil, errs.ErrInvalidBloomFilter
	}

	return &Filter{bitset: bitset, numBlocks: uint64(len(bitset) / BlockSize)}, nil
}

// NewWithBlocks creates an empty filter of n blocks; n below 1 is raised to 1.
func NewWithBlocks(n int) *Filter {
	n = max(n, 1)

	return &Filter{bitset: make([]byte, n*BlockSize), numBlocks: uint64(n)}
}

// OptimalSize returns the bitset size in bytes for ndv distinct values at a
// false positive probability of fpp. The result is a power of two within
// [MinSize, MaxSize].
func OptimalSize(ndv uint64, fpp float64) int {
	if ndv == 0 || fpp <= 0 || fpp >= 1 {
		return MinSize
	}

	bits := -8 * float64(ndv) / math.Log(1-math.Pow(fpp, 1.0/8))
	size := MinSize
	for size < MaxSize && float64(size*8) < bits {
		size <<= 1
	}

	return size
}

// Bytes returns the bitset.
func (f *Filter) Bytes() []byte {
	return f.bitset
}

// NumBlocks returns the number of blocks in the filter.
func (f *Filter) NumBlocks() int {
	return int(f.numBlocks)
}

// Contains reports whether the value hashed to h may be in the filter. A false
// result is definite.
func (f *Filter) Contains(h uint64) bool {
	block := f.block(h)
	key := uint32(h)
	engine := endian.GetLittleEndianEngine()

	for i := range wordsPerBlock {
		mask := uint32(1) << ((key * salt[i]) >> 27)
		if engine.Uint32(block[i*4:])&mask == 0 {
			return false
		}
	}

	return true
}

// Insert adds the value hashed to h to the filter.
func (f *Filter) Insert(h uint64) {
	block := f.block(h)
	key := uint32(h)
	engine := endian.GetLittleEndianEngine()

	for i := range wordsPerBlock {
		mask := uint32(1) << ((key * salt[i]) >> 27)
		engine.PutUint32(block[i*4:], engine.Uint32(block[i*4:])|mask)
	}
}

func (f *Filter) block(h uint64) []byte {
	i := ((h >> 32) * f.numBlocks) >> 32
	return f.bitset[i*BlockSize : (i+1)*BlockSize]
}

// HashInt32 hashes an INT32 value.
func HashInt32(v int32) uint64 { return hash.Uint32(uint32(v)) }

// HashInt64 hashes an INT64 value.
func HashInt64(v int64) uint64 { return hash.Uint64(uint64(v)) }

// HashFloat32 hashes a FLOAT value.
func HashFloat32(v float32) uint64 { return hash.Float32(v) }

// HashFloat64 hashes a DOUBLE value.
func HashFloat64(v float64) uint64 { return hash.Float64(v) }

// HashBytes hashes a BYTE_ARRAY or FIXED_LEN_BYTE_ARRAY value.
func HashBytes(v []byte) uint64 { return hash.Bytes(v) }

// HashString hashes a string stored as BYTE_ARRAY.
func HashString(v string) uint64 { return hash.String(v) }
