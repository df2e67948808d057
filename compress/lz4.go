package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor handles LZ4_RAW pages: a single LZ4 block with no framing.
//
// The Hadoop-framed LZ4 codec is not supported.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4_RAW codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses src as one LZ4 block using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	bound := lz4.CompressBlockBound(len(src))
	if cap(dst) < bound {
		dst = make([]byte, bound)
	}
	dst = dst[:bound]

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses one LZ4 block.
//
// An LZ4 block does not record its decompressed size, so the output buffer is
// sized adaptively:
//  1. Start with cap(dst), or 4x the compressed size when dst has no capacity
//  2. On ErrInvalidSourceShortBuffer, double the buffer size
//  3. Give up once the buffer would exceed MaxDecompressedSize
func (c LZ4Compressor) Decompress(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	bufSize := min(cap(dst), MaxDecompressedSize)
	if bufSize == 0 {
		bufSize = len(src) * 4
	}
	buf := dst[:cap(dst)]

	for bufSize <= MaxDecompressedSize {
		if len(buf) < bufSize {
			buf = make([]byte, bufSize)
		}

		n, err := lz4.UncompressBlock(src, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < MaxDecompressedSize {
				bufSize = min(bufSize*2, MaxDecompressedSize)
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
