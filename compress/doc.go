// Package compress provides the Parquet page compression codecs.
//
// A data page is compressed as a whole (V1) or only in its values section (V2)
// with the codec named in the column chunk metadata. The page package uses
// GetCodec to pick the codec and decompresses into pooled buffers before the
// page buffer is split into level and value sections.
//
// # Supported Codecs
//
//	Parquet codec   | Implementation
//	----------------|--------------------------------------------------
//	UNCOMPRESSED    | NoOpCompressor (copy)
//	SNAPPY          | SnappyCompressor, github.com/golang/snappy (block format)
//	GZIP            | GzipCompressor, github.com/klauspost/compress/gzip
//	BROTLI          | BrotliCompressor, github.com/andybalholm/brotli
//	ZSTD            | ZstdCompressor, github.com/klauspost/compress/zstd,
//	                | or github.com/valyala/gozstd with -tags gozstd and cgo
//	LZ4_RAW         | LZ4Compressor, github.com/pierrec/lz4/v4 (raw block)
//
// LZO and the deprecated Hadoop-framed LZ4 codec return ErrUnsupportedCompression.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(dst, src []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, src []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Both operations write into dst's backing array when it is large enough, so a
// caller that knows the uncompressed page size can decompress without an extra
// allocation:
//
//	buf := pool.GetPageBuffer()
//	defer pool.PutPageBuffer(buf)
//	out, err := codec.Decompress(buf.Sized(uncompressedSize), compressed)
//
// # Memory Management
//
// Encoders and decoders that carry state (zstd, gzip, brotli, lz4) are pooled
// with sync.Pool and reused across calls. Codecs whose frames do not record
// the decompressed size stop at MaxDecompressedSize.
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
package compress
