package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/andybalholm/brotli"
)

var brotliReaderPool = sync.Pool{
	New: func() any {
		return brotli.NewReader(nil)
	},
}

var brotliWriterPool = sync.Pool{
	New: func() any {
		return brotli.NewWriterLevel(nil, brotli.DefaultCompression)
	},
}

// BrotliCompressor handles BROTLI pages.
type BrotliCompressor struct{}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a new Brotli codec.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{}
}

// Compress compresses src using a pooled writer.
func (c BrotliCompressor) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])

	w := brotliWriterPool.Get().(*brotli.Writer)
	defer brotliWriterPool.Put(w)
	w.Reset(buf)

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a Brotli stream using a pooled reader.
func (c BrotliCompressor) Decompress(dst, src []byte) ([]byte, error) {
	r := brotliReaderPool.Get().(*brotli.Reader)
	defer brotliReaderPool.Put(r)

	if err := r.Reset(bytes.NewReader(src)); err != nil {
		return nil, fmt.Errorf("brotli decompression failed: %w", err)
	}

	return readLimited(dst, r, "brotli")
}
