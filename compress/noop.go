package compress

// NoOpCompressor handles UNCOMPRESSED pages.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress copies src into dst.
func (c NoOpCompressor) Compress(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

// Decompress copies src into dst.
//
// The copy keeps the result valid after src's page buffer is released, so
// decoders never alias the caller's read buffer.
func (c NoOpCompressor) Decompress(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}
