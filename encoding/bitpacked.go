package encoding

import (
	"github.com/arloliu/pqpage/endian"
	"github.com/arloliu/pqpage/errs"
)

const (
	// BitPackedBlockLen is the number of values unpacked at a time by BitPackedDecoder.
	BitPackedBlockLen = 32
	// MaxBitWidth is the largest bit width a packed value may use.
	MaxBitWidth = 32

	maxBlockBytes = BitPackedBlockLen * MaxBitWidth / 8
)

// BitPackedDecoder decodes the deprecated Parquet BIT_PACKED encoding.
//
// Values are packed MSB-first across big-endian 32-bit words with no padding
// between them. The decoder unpacks 32 values at a time into a fixed block;
// a block of 32 values at w bits occupies exactly w words (4*w bytes).
//
// The decoder borrows data and never copies it. The buffer must stay valid and
// unmodified for as long as the decoder is used.
//
// Note: BitPackedDecoder is NOT thread-safe.
type BitPackedDecoder struct {
	block     [BitPackedBlockLen]uint32
	chunks    []byte // bytes of the blocks that have not been unpacked yet
	chunkSize int    // bytes per full block
	index     int    // next value in block; < BitPackedBlockLen while remaining > 0
	remaining int
	numBits   uint8
}

var (
	_ Iterator[uint32] = (*BitPackedDecoder)(nil)
	_ Skipper          = (*BitPackedDecoder)(nil)
)

// NewBitPackedDecoder creates a decoder yielding exactly length values of numBits
// bits each from data.
//
// Parameters:
//   - data: Packed bytes
//   - numBits: Bit width of every value, in [0, 32]. Zero means every value is
//     zero and data is not read.
//   - length: Number of values to produce
//
// Returns:
//   - *BitPackedDecoder: Decoder positioned at the first value
//   - error: ErrInvalidBitWidth, ErrInvalidLength, or ErrEmptyBuffer when values
//     are requested from an empty buffer
//
// A buffer shorter than a full block is zero-padded, so a short final block
// yields its trailing values as zeros rather than failing.
func NewBitPackedDecoder(data []byte, numBits uint8, length int) (*BitPackedDecoder, error) {
	if numBits > MaxBitWidth {
		return nil, errs.ErrInvalidBitWidth
	}

	if length < 0 {
		return nil, errs.ErrInvalidLength
	}

	if length > 0 && numBits > 0 && len(data) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	d := &BitPackedDecoder{
		chunks:    data,
		chunkSize: BitPackedBlockLen * int(numBits) / 8,
		remaining: length,
		numBits:   numBits,
	}

	if length > 0 {
		d.loadBlock()
	}

	return d, nil
}

// Next returns the next decoded value.
func (d *BitPackedDecoder) Next() (uint32, bool) {
	if d.remaining == 0 {
		return 0, false
	}

	v := d.block[d.index]
	d.index++
	d.remaining--

	if d.index == BitPackedBlockLen && d.remaining > 0 {
		d.loadBlock()
	}

	return v, true
}

// Len returns the exact number of values left.
func (d *BitPackedDecoder) Len() int {
	return d.remaining
}

// Skip advances past up to n values. Whole blocks inside the skipped range are
// stepped over without being unpacked.
func (d *BitPackedDecoder) Skip(n int) int {
	n = clampSkip(n, d.remaining)
	if n == 0 {
		return 0
	}

	d.remaining -= n
	if d.index+n < BitPackedBlockLen {
		d.index += n
		return n
	}

	// position at the start of the first block after the current one
	rest := n - (BitPackedBlockLen - d.index)
	d.advance(rest / BitPackedBlockLen * d.chunkSize)

	if d.remaining > 0 {
		d.loadBlock()
		d.index = rest % BitPackedBlockLen
	} else {
		d.index = BitPackedBlockLen
	}

	return n
}

// Decode fills dst with up to len(dst) values and returns how many were written.
func (d *BitPackedDecoder) Decode(dst []uint32) int {
	n := 0
	for n < len(dst) && d.remaining > 0 {
		avail := min(BitPackedBlockLen-d.index, d.remaining, len(dst)-n)
		copy(dst[n:n+avail], d.block[d.index:d.index+avail])
		n += avail
		d.Skip(avail)
	}

	return n
}

func (d *BitPackedDecoder) advance(n int) {
	d.chunks = d.chunks[min(n, len(d.chunks)):]
}

// loadBlock unpacks the next chunk into the block and resets the index.
func (d *BitPackedDecoder) loadBlock() {
	n := min(d.chunkSize, len(d.chunks))
	chunk := d.chunks[:n]
	d.chunks = d.chunks[n:]

	if n < d.chunkSize {
		var scratch [maxBlockBytes]byte
		copy(scratch[:], chunk)
		chunk = scratch[:d.chunkSize]
	}

	unpackBlock(&d.block, chunk, d.numBits)
	d.index = 0
}

// unpackBlock decodes 32 MSB-first values of numBits bits from src.
//
// src is read as a stream of big-endian words through three rolling registers:
// current holds the bits being extracted (left-aligned), next is always a full
// word, and nextNext holds the leftover of the word after that. When current
// runs short, it is topped up from next, next is refilled from nextNext, and
// nextNext is reloaded from the stream only once it is drained. Go defines
// shifts by the register width or more as zero, which the top-up relies on.
func unpackBlock(dst *[BitPackedBlockLen]uint32, src []byte, numBits uint8) {
	if numBits == 0 {
		*dst = [BitPackedBlockLen]uint32{}
		return
	}

	engine := endian.GetBigEndianEngine()
	pos := 0
	load := func() uint32 {
		if pos >= len(src) {
			return 0
		}
		word := endian.Uint32Padded(engine, src[pos:])
		pos += 4

		return word
	}

	w := uint32(numBits)
	mask := ^uint32(0) << (32 - w)

	current := load()
	next := load()
	nextNext := load()
	remaining := uint32(32)    // valid bits in current
	nextNextBits := uint32(32) // valid bits in nextNext

	for i := range dst {
		if remaining < w {
			used := 32 - remaining

			current |= next >> remaining
			next <<= used
			next |= nextNext >> remaining

			if nextNextBits >= used {
				nextNext <<= used
				nextNextBits -= used
			} else {
				filled := remaining + nextNextBits
				nextNext = load()
				next |= nextNext >> filled
				nextNext <<= 32 - filled
				nextNextBits = filled
			}

			if nextNextBits == 0 {
				nextNext = load()
				nextNextBits = 32
			}

			remaining = 32
		}

		dst[i] = (current & mask) >> (32 - w)
		current <<= w
		remaining -= w
	}
}
