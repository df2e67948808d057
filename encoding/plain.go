package encoding

import (
	"math"

	"github.com/arloliu/pqpage/endian"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/internal/bitpack"
)

// Fixed is the set of fixed-width physical types read by PlainDecoder.
type Fixed interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

// PlainDecoder decodes PLAIN encoded fixed-width values: little-endian values
// packed back to back. A trailing partial value is ignored.
//
// Note: PlainDecoder is NOT thread-safe and borrows its input buffer.
type PlainDecoder[T Fixed] struct {
	data []byte
	size int
	read func([]byte) T
}

var (
	_ Iterator[int64] = (*PlainDecoder[int64])(nil)
	_ Skipper         = (*PlainDecoder[int64])(nil)
	_ Iterator[bool]  = (*PlainBoolDecoder)(nil)
	_ Skipper         = (*PlainBoolDecoder)(nil)
)

// NewPlainDecoder creates a decoder over the values section of a PLAIN page.
func NewPlainDecoder[T Fixed](data []byte) *PlainDecoder[T] {
	size, read := plainReader[T](endian.GetLittleEndianEngine())

	return &PlainDecoder[T]{
		data: data[:len(data)/size*size],
		size: size,
		read: read,
	}
}

// Next returns the next value.
func (d *PlainDecoder[T]) Next() (T, bool) {
	if len(d.data) == 0 {
		var zero T
		return zero, false
	}

	v := d.read(d.data)
	d.data = d.data[d.size:]

	return v, true
}

// Len returns the number of values left.
func (d *PlainDecoder[T]) Len() int {
	return len(d.data) / d.size
}

// Skip advances past up to n values.
func (d *PlainDecoder[T]) Skip(n int) int {
	n = clampSkip(n, d.Len())
	d.data = d.data[n*d.size:]

	return n
}

// Decode fills dst with up to len(dst) values and returns how many were written.
func (d *PlainDecoder[T]) Decode(dst []T) int {
	n := min(len(dst), d.Len())
	for i := range n {
		dst[i] = d.read(d.data[i*d.size:])
	}
	d.data = d.data[n*d.size:]

	return n
}

func plainReader[T Fixed](engine endian.EndianEngine) (int, func([]byte) T) {
	var zero T
	switch any(zero).(type) {
	case int32:
		return 4, func(b []byte) T { return T(int32(engine.Uint32(b))) }
	case uint32:
		return 4, func(b []byte) T { return T(engine.Uint32(b)) }
	case float32:
		return 4, func(b []byte) T { return T(math.Float32frombits(engine.Uint32(b))) }
	case int64:
		return 8, func(b []byte) T { return T(int64(engine.Uint64(b))) }
	case uint64:
		return 8, func(b []byte) T { return T(engine.Uint64(b)) }
	default:
		return 8, func(b []byte) T { return T(math.Float64frombits(engine.Uint64(b))) }
	}
}

// PlainBoolDecoder decodes PLAIN encoded booleans, one LSB-first bit each.
type PlainBoolDecoder struct {
	data      []byte
	pos       int
	remaining int
}

// NewPlainBoolDecoder creates a decoder yielding numValues booleans. Bits
// past the end of data read as false.
func NewPlainBoolDecoder(data []byte, numValues int) (*PlainBoolDecoder, error) {
	if numValues < 0 {
		return nil, errs.ErrInvalidLength
	}

	return &PlainBoolDecoder{data: data, remaining: numValues}, nil
}

// Next returns the next boolean.
func (d *PlainBoolDecoder) Next() (bool, bool) {
	if d.remaining == 0 {
		return false, false
	}

	v := d.pos>>3 < len(d.data) && bitpack.Bit(d.data, d.pos)
	d.pos++
	d.remaining--

	return v, true
}

// Len returns the number of values left.
func (d *PlainBoolDecoder) Len() int {
	return d.remaining
}

// Skip advances past up to n values.
func (d *PlainBoolDecoder) Skip(n int) int {
	n = clampSkip(n, d.remaining)
	d.pos += n
	d.remaining -= n

	return n
}
