package encoding

import (
	"math/bits"

	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/internal/bitpack"
)

// BitmapRun is a slice of a width-1 hybrid RLE stream.
type BitmapRun struct {
	Kind RunKind
	// Set is the repeated value of an RLE run.
	Set bool
	// Bitmap holds the LSB-first bits of a bit-packed run; value i of the run is
	// bit Offset+i. Bits past the end of Bitmap read as false.
	Bitmap []byte
	Offset int
	Length int
}

// Get returns value i of the run.
func (r BitmapRun) Get(i int) bool {
	if r.Kind == RunRLE {
		return r.Set
	}

	bit := r.Offset + i
	if bit>>3 >= len(r.Bitmap) {
		return false
	}

	return bitpack.Bit(r.Bitmap, bit)
}

// CountSet returns the number of true values in the run.
func (r BitmapRun) CountSet() int {
	if r.Kind == RunRLE {
		if r.Set {
			return r.Length
		}

		return 0
	}

	return countBits(r.Bitmap, r.Offset, r.Length)
}

// HybridBitmapDecoder decodes a hybrid RLE stream of bit width 1 as booleans.
//
// It is the fast path for definition levels with a maximum level of 1: RLE runs
// are handed out whole and bit-packed runs are read directly from the bitmap,
// so no per-value integer unpacking happens.
//
// Note: HybridBitmapDecoder is NOT thread-safe and borrows its input buffer.
type HybridBitmapDecoder struct {
	runs      HybridRunDecoder
	run       Run
	runPos    int
	remaining int
	err       error
}

var (
	_ Iterator[bool] = (*HybridBitmapDecoder)(nil)
	_ Skipper        = (*HybridBitmapDecoder)(nil)
)

// NewHybridBitmapDecoder creates a decoder yielding numValues booleans.
func NewHybridBitmapDecoder(data []byte, numValues int) (*HybridBitmapDecoder, error) {
	if numValues < 0 {
		return nil, errs.ErrInvalidLength
	}

	if numValues > 0 && len(data) == 0 {
		return nil, errs.ErrEmptyBuffer
	}

	return &HybridBitmapDecoder{
		runs:      newHybridRunDecoder(data, 1),
		remaining: numValues,
	}, nil
}

// NextRun returns the rest of the current run, capped to limit values when
// limit > 0 and always to the number of values left.
func (d *HybridBitmapDecoder) NextRun(limit int) (BitmapRun, bool) {
	if d.remaining == 0 || !d.ensureRun() {
		return BitmapRun{}, false
	}

	n := min(d.run.Length-d.runPos, d.remaining)
	if limit > 0 {
		n = min(n, limit)
	}

	run := BitmapRun{Kind: d.run.Kind, Length: n}
	if d.run.Kind == RunRLE {
		run.Set = d.run.Value != 0
	} else {
		run.Bitmap = d.run.Packed
		run.Offset = d.runPos
	}

	d.runPos += n
	d.remaining -= n

	return run, true
}

// Next returns the next boolean.
func (d *HybridBitmapDecoder) Next() (bool, bool) {
	run, ok := d.NextRun(1)
	if !ok {
		return false, false
	}

	return run.Get(0), true
}

// Len returns the number of values left.
func (d *HybridBitmapDecoder) Len() int {
	return d.remaining
}

// Skip advances past up to n values.
func (d *HybridBitmapDecoder) Skip(n int) int {
	n = clampSkip(n, d.remaining)

	skipped := 0
	for skipped < n {
		run, ok := d.NextRun(n - skipped)
		if !ok {
			break
		}
		skipped += run.Length
	}

	return skipped
}

// CountSet consumes up to n values and returns how many were consumed and how
// many of those were true.
func (d *HybridBitmapDecoder) CountSet(n int) (int, int) {
	n = clampSkip(n, d.remaining)

	skipped, set := 0, 0
	for skipped < n {
		run, ok := d.NextRun(n - skipped)
		if !ok {
			break
		}
		skipped += run.Length
		set += run.CountSet()
	}

	return skipped, set
}

// Err reports why decoding stopped before numValues values were produced.
func (d *HybridBitmapDecoder) Err() error {
	if err := d.runs.Err(); err != nil {
		return err
	}

	return d.err
}

func (d *HybridBitmapDecoder) ensureRun() bool {
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
	}

	return true
}

// countBits counts the set bits in [offset, offset+n) of an LSB-first bitmap.
// Bits past the end of bitmap count as unset.
func countBits(bitmap []byte, offset, n int) int {
	end := min(offset+n, len(bitmap)*8)
	count := 0

	i := offset
	for ; i < end && i%8 != 0; i++ {
		if bitpack.Bit(bitmap, i) {
			count++
		}
	}

	for ; i+8 <= end; i += 8 {
		count += bits.OnesCount8(bitmap[i/8])
	}

	for ; i < end; i++ {
		if bitpack.Bit(bitmap, i) {
			count++
		}
	}

	return count
}
