package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipReaderPool holds readers created by earlier calls; a gzip.Reader cannot
// be built without a stream, so New is left unset.
var gzipReaderPool sync.Pool

var gzipWriterPool = sync.Pool{
	New: func() any {
		w, err := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		if err != nil {
			panic(fmt.Sprintf("failed to create gzip writer for pool: %v", err))
		}

		return w
	},
}

// GzipCompressor handles GZIP pages.
type GzipCompressor struct{}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a new gzip codec.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{}
}

// Compress compresses src into a gzip stream using a pooled writer.
func (c GzipCompressor) Compress(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])

	w := gzipWriterPool.Get().(*gzip.Writer)
	defer gzipWriterPool.Put(w)
	w.Reset(buf)

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a gzip stream using a pooled reader.
func (c GzipCompressor) Decompress(dst, src []byte) ([]byte, error) {
	var (
		r   *gzip.Reader
		err error
	)

	if pooled, ok := gzipReaderPool.Get().(*gzip.Reader); ok {
		r = pooled
		err = r.Reset(bytes.NewReader(src))
	} else {
		r, err = gzip.NewReader(bytes.NewReader(src))
	}
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer gzipReaderPool.Put(r)

	return readLimited(dst, r, "gzip")
}

// readLimited reads r to the end into dst's backing array, growing it only
// when full, and fails once more than MaxDecompressedSize bytes come out.
func readLimited(dst []byte, r io.Reader, name string) ([]byte, error) {
	buf := dst[:0]
	for {
		if len(buf) == cap(buf) {
			// probe before growing so an exactly sized dst is kept
			var probe [1]byte
			n, err := r.Read(probe[:])
			if n > 0 {
				buf = append(buf, probe[0])
			}
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			if err != nil {
				return nil, fmt.Errorf("%s decompression failed: %w", name, err)
			}

			continue
		}

		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]

		if len(buf) > MaxDecompressedSize {
			return nil, fmt.Errorf("%s decompression failed: output exceeds %d bytes", name, MaxDecompressedSize)
		}

		if errors.Is(err, io.EOF) {
			return buf, nil
		}

		if err != nil {
			return nil, fmt.Errorf("%s decompression failed: %w", name, err)
		}
	}
}
