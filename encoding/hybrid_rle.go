package encoding

import (
	"encoding/binary"

	"github.com/arloliu/pqpage/endian"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/internal/bitpack"
)

// maxRunLength bounds the number of values a single run header may announce.
const maxRunLength = 1 << 31

// RunKind identifies the two run types of the hybrid RLE encoding.
type RunKind uint8

const (
	RunRLE       RunKind = 0x1 // RunRLE is a single value repeated Length times.
	RunBitPacked RunKind = 0x2 // RunBitPacked is Length/8 groups of 8 LSB-first packed values.
)

func (k RunKind) String() string {
	switch k {
	case RunRLE:
		return "RLE"
	case RunBitPacked:
		return "BitPacked"
	default:
		return "Unknown"
	}
}

// Run is one run of a hybrid RLE stream.
type Run struct {
	Kind RunKind
	// Length is the number of values in the run. Bit-packed runs always hold a
	// multiple of 8 values, the last ones possibly being padding.
	Length int
	// Value is the repeated value of an RLE run.
	Value uint32
	// Packed holds the bytes of a bit-packed run. It is shorter than
	// Length*bitWidth/8 when the stream is truncated; missing bits read as zero.
	Packed []byte
}

// HybridRunDecoder splits a hybrid RLE stream into runs.
//
// Each run starts with a ULEB128 header h. When h&1 == 0 the run is an RLE run
// of h>>1 copies of a value stored in ceil(bitWidth/8) little-endian bytes;
// otherwise it is a bit-packed run of h>>1 groups of 8 values.
//
// Iteration stops at the end of the buffer or at the first malformed run; Err
// tells the two apart.
type HybridRunDecoder struct {
	data      []byte
	err       error
	valueSize int
	numBits   uint8
}

// NewHybridRunDecoder creates a run decoder over data for values of numBits bits.
func NewHybridRunDecoder(data []byte, numBits uint8) (*HybridRunDecoder, error) {
	if numBits > MaxBitWidth {
		return nil, errs.ErrInvalidBitWidth
	}

	d := newHybridRunDecoder(data, numBits)

	return &d, nil
}

func newHybridRunDecoder(data []byte, numBits uint8) HybridRunDecoder {
	return HybridRunDecoder{
		data:      data,
		valueSize: (int(numBits) + 7) / 8,
		numBits:   numBits,
	}
}

// Next returns the next run, or false at the end of the stream or on error.
func (d *HybridRunDecoder) Next() (Run, bool) {
	if d.err != nil || len(d.data) == 0 {
		return Run{}, false
	}

	h, n := binary.Uvarint(d.data)
	if n <= 0 || h>>1 > maxRunLength {
		d.err = errs.ErrInvalidRunHeader
		return Run{}, false
	}
	d.data = d.data[n:]

	if h&1 == 1 {
		groups := int(h >> 1)
		size := min(groups*int(d.numBits), len(d.data))
		packed := d.data[:size]
		d.data = d.data[size:]

		return Run{Kind: RunBitPacked, Length: groups * bitpack.GroupSize, Packed: packed}, true
	}

	if len(d.data) < d.valueSize {
		d.err = errs.ErrTruncatedRun
		return Run{}, false
	}

	value := endian.UintN(d.data, d.valueSize)
	d.data = d.data[d.valueSize:]

	return Run{Kind: RunRLE, Length: int(h >> 1), Value: value}, true
}

// Err returns the error that stopped iteration, or nil if the stream ended cleanly.
func (d *HybridRunDecoder) Err() error {
	return d.err
}

// Remaining returns the bytes that have not been consumed yet.
func (d *HybridRunDecoder) Remaining() []byte {
	return d.data
}

// HybridRLEDecoder decodes a hybrid RLE stream into exactly numValues integers.
//
// It backs dictionary index and multi-level definition/repetition level
// decoding. Skip jumps over RLE runs in constant time and over bit-packed runs
// without unpacking the skipped groups.
//
// Note: HybridRLEDecoder is NOT thread-safe and borrows its input buffer.
type HybridRLEDecoder struct {
	runs        HybridRunDecoder
	run         Run
	group       [bitpack.GroupSize]uint32
	loadedGroup int // index of the group held in group, -1 when none
	runPos      int
	remaining   int
	err         error
}

var (
	_ Iterator[uint32] = (*HybridRLEDecoder)(nil)
	_ Skipper          = (*HybridRLEDecoder)(nil)
)

// NewHybridRLEDecoder creates a decoder yielding numValues values of numBits bits.
//
// Returns:
//   - *HybridRLEDecoder: Decoder positioned at the first value
//   - error: ErrInvalidBitWidth, ErrInvalidLength, or ErrEmptyBuffer when values
//     are requested from an empty buffer
func NewHybridRLEDecoder(data []byte, numBits uint8, numValues int) (*HybridRLEDecoder, error) {
	if numBits > MaxBitWidth {
		return nil, errs.ErrInvalidBitWidth
	}

	if numValues < 0 {
		return nil, errs.ErrInvalidLength
	}

	if numValues > 0 && len(data) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	return &HybridRLEDecoder{
		runs:        newHybridRunDecoder(data, numBits),
		loadedGroup: -1,
		remaining:   numValues,
	}, nil
}

// Next returns the next decoded value.
func (d *HybridRLEDecoder) Next() (uint32, bool) {
	if d.remaining == 0 || !d.ensureRun() {
		return 0, false
	}

	var v uint32
	if d.run.Kind == RunRLE {
		v = d.run.Value
	} else {
		g := d.runPos / bitpack.GroupSize
		if g != d.loadedGroup {
			bitpack.Unpack8(&d.group, d.groupBytes(g), d.runs.numBits)
			d.loadedGroup = g
		}
		v = d.group[d.runPos%bitpack.GroupSize]
	}

	d.runPos++
	d.remaining--

	return v, true
}

// Len returns the number of values left to decode.
func (d *HybridRLEDecoder) Len() int {
	return d.remaining
}

// Skip advances past up to n values.
func (d *HybridRLEDecoder) Skip(n int) int {
	n = clampSkip(n, d.remaining)

	skipped := 0
	for skipped < n && d.ensureRun() {
		step := min(d.run.Length-d.runPos, n-skipped)
		d.runPos += step
		d.remaining -= step
		skipped += step
	}

	return skipped
}

// Decode fills dst with up to len(dst) values and returns how many were written.
// RLE runs are copied in bulk.
func (d *HybridRLEDecoder) Decode(dst []uint32) int {
	n := 0
	for n < len(dst) && d.remaining > 0 && d.ensureRun() {
		if d.run.Kind == RunRLE {
			step := min(d.run.Length-d.runPos, len(dst)-n, d.remaining)
			fill(dst[n:n+step], d.run.Value)
			d.runPos += step
			d.remaining -= step
			n += step

			continue
		}

		v, _ := d.Next()
		dst[n] = v
		n++
	}

	return n
}

// Err reports why decoding stopped before numValues values were produced: a
// malformed run, or ErrTruncatedRun when the stream simply ran out of runs.
func (d *HybridRLEDecoder) Err() error {
	if err := d.runs.Err(); err != nil {
		return err
	}

	return d.err
}

// ensureRun makes sure the current run has values left, pulling the next run
// when needed. It returns false and stops the decoder when the stream ends.
func (d *HybridRLEDecoder) ensureRun() bool {
	for d.runPos >= d.run.Length {
		run, ok := d.runs.Next()
		if !ok {
			if d.remaining > 0 && d.runs.Err() == nil {
				d.err = errs.ErrTruncatedRun
			}
			d.remaining = 0

			return false
		}

		d.run = run
		d.runPos = 0
		d.loadedGroup = -1
	}

	return true
}

func (d *HybridRLEDecoder) groupBytes(g int) []byte {
	w := int(d.runs.numBits)
	start := g * w
	if start >= len(d.run.Packed) {
		return nil
	}

	return d.run.Packed[start:min(start+w, len(d.run.Packed))]
}

func fill(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}
