package compress

import (
	"fmt"

	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/format"
)

// Compressor compresses Parquet page payloads.
type Compressor interface {
	// Compress compresses src and returns the result.
	//
	// Memory management:
	//   - The result is written into dst's backing array when it has room,
	//     otherwise a new slice is allocated
	//   - src is not modified and must not overlap dst
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor decompresses Parquet page payloads.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	values, err := codec.Decompress(make([]byte, 0, uncompressedSize), compressed)
//	if err != nil {
//	    return fmt.Errorf("decompress page: %w", err)
//	}
//
// Thread Safety: all built-in decompressors are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses src and returns the original bytes.
	//
	// cap(dst) is used as the output buffer and as the size hint for formats
	// that do not store the decompressed size, so callers that know the page's
	// uncompressed size should pass a buffer of that capacity.
	//
	// Error conditions:
	//   - Returns error if src is corrupted or uses another format
	//   - Returns error if the output would exceed MaxDecompressedSize
	Decompress(dst, src []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// MaxDecompressedSize bounds the output of codecs whose frames do not carry the
// decompressed size.
const MaxDecompressedSize = 128 * 1024 * 1024

var builtinCodecs = map[format.CompressionCodec]Codec{
	format.CompressionUncompressed: NewNoOpCompressor(),
	format.CompressionSnappy:       NewSnappyCompressor(),
	format.CompressionGzip:         NewGzipCompressor(),
	format.CompressionBrotli:       NewBrotliCompressor(),
	format.CompressionZstd:         NewZstdCompressor(),
	format.CompressionLZ4Raw:       NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for a Parquet compression codec.
//
// Returns:
//   - Codec: Shared, concurrency-safe codec
//   - error: ErrUnsupportedCompression (wrapped) for LZO, Hadoop-framed LZ4 and
//     unknown codecs
func GetCodec(codec format.CompressionCodec) (Codec, error) {
	if c, ok := builtinCodecs[codec]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%s: %w", codec, errs.ErrUnsupportedCompression)
}
