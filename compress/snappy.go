package compress

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyCompressor handles SNAPPY pages, which use the raw snappy block format
// rather than the framed stream format.
type SnappyCompressor struct{}

var _ Codec = (*SnappyCompressor)(nil)

// NewSnappyCompressor creates a new Snappy codec.
func NewSnappyCompressor() SnappyCompressor {
	return SnappyCompressor{}
}

// Compress encodes src as a snappy block.
func (c SnappyCompressor) Compress(dst, src []byte) ([]byte, error) {
	return snappy.Encode(dst[:cap(dst)], src), nil
}

// Decompress decodes a snappy block. The block header carries the decoded
// length, which is checked against MaxDecompressedSize before decoding.
func (c SnappyCompressor) Decompress(dst, src []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	if n > MaxDecompressedSize {
		return nil, fmt.Errorf("snappy decompression failed: decoded length %d exceeds limit", n)
	}

	out, err := snappy.Decode(dst[:cap(dst)], src)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return out, nil
}
