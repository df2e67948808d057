package compress

// ZstdCompressor handles ZSTD pages.
//
// The default build uses the pure Go klauspost/compress implementation with
// pooled encoders and decoders. Building with the gozstd tag and cgo enabled
// switches to the libzstd bindings of valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(nil, page)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
