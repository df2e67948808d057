// Package errs defines the sentinel errors returned by pqpage decoders.
//
// Decoders return these values directly or wrap them with additional context
// using fmt.Errorf and %w, so callers should compare with errors.Is.
package errs

import "errors"

// Construction errors for malformed or truncated input.
var (
	// ErrEmptyBuffer is returned when a decoder needs at least one chunk of input
	// to produce the requested values but the buffer is empty.
	ErrEmptyBuffer = errors.New("pqpage: buffer is empty")
	// ErrInvalidLevelsLength is returned when a level section length (V1 prefix or
	// V2 header field) points past the end of the page buffer.
	ErrInvalidLevelsLength = errors.New("pqpage: invalid levels length")
	// ErrInvalidRunHeader is returned by hybrid RLE decoders when a run header is
	// not a valid ULEB128 value.
	ErrInvalidRunHeader = errors.New("pqpage: invalid hybrid rle run header")
	// ErrTruncatedRun is reported by hybrid RLE decoders when an RLE run value is
	// cut short by the end of the buffer, or when the runs end before the
	// requested number of values.
	ErrTruncatedRun = errors.New("pqpage: truncated hybrid rle run")
	// ErrInvalidBloomFilter is returned when a bloom filter bitset is not a
	// positive multiple of the block size.
	ErrInvalidBloomFilter = errors.New("pqpage: invalid bloom filter bitset")
)

// Parameter errors.
var (
	ErrInvalidBitWidth        = errors.New("pqpage: bit width must be in range [0, 32]")
	ErrInvalidLength          = errors.New("pqpage: length must not be negative")
	ErrInvalidMaxLevel        = errors.New("pqpage: max level must be positive")
	ErrInvalidSelection       = errors.New("pqpage: row selection must be ascending and non-overlapping")
	ErrInvalidPageVersion     = errors.New("pqpage: unknown data page version")
	ErrUnsupportedEncoding    = errors.New("pqpage: unsupported encoding")
	ErrUnsupportedCompression = errors.New("pqpage: unsupported compression codec")
	ErrInvalidParallelism     = errors.New("pqpage: parallelism must be positive")
)
