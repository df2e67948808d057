package encoding

import "iter"

// Iterator is a pull-based, finite sequence of decoded items.
//
// Every decoder and combinator in this package implements Iterator. Once Next
// has returned false it keeps returning false; an Iterator never panics on
// exhaustion.
type Iterator[T any] interface {
	// Next returns the next item and true, or the zero value and false once the
	// sequence is exhausted.
	Next() (T, bool)

	// Len returns the number of items Next will still produce. Decoders in this
	// package report an exact count; combinators report the tightest bound they
	// can derive from their inputs.
	Len() int
}

// Skipper is implemented by iterators that can advance without materializing
// the skipped items, e.g. by jumping over whole RLE runs or packed blocks.
type Skipper interface {
	// Skip advances past up to n items and returns how many were skipped.
	Skip(n int) int
}

var (
	_ Iterator[int] = (*SliceIterator[int])(nil)
	_ Skipper       = (*SliceIterator[int])(nil)
	_ Iterator[int] = (*RangeIterator)(nil)
	_ Skipper       = (*RangeIterator)(nil)
	_ Iterator[int] = (*RepeatIterator[int])(nil)
	_ Skipper       = (*RepeatIterator[int])(nil)
)

// Skip advances it by up to n items and returns how many were skipped.
//
// It uses the iterator's own Skip when it implements Skipper and falls back to
// pulling and discarding items otherwise.
func Skip[T any](it Iterator[T], n int) int {
	if n <= 0 {
		return 0
	}

	if s, ok := it.(Skipper); ok {
		return s.Skip(n)
	}

	skipped := 0
	for skipped < n {
		if _, ok := it.Next(); !ok {
			break
		}
		skipped++
	}

	return skipped
}

// All adapts it to a range-over-func sequence. Breaking out of the loop leaves
// it positioned after the last yielded item.
//
// Example:
//
//	for v := range encoding.All(decoder) {
//	    fmt.Println(v)
//	}
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a new slice sized by it.Len().
func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0, it.Len())
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// SliceIterator iterates over an in-memory slice.
type SliceIterator[T any] struct {
	items []T
}

// FromSlice returns a skip-capable iterator over items. The slice is borrowed,
// not copied.
func FromSlice[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

func (s *SliceIterator[T]) Next() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	v := s.items[0]
	s.items = s.items[1:]

	return v, true
}

func (s *SliceIterator[T]) Len() int {
	return len(s.items)
}

func (s *SliceIterator[T]) Skip(n int) int {
	n = clampSkip(n, len(s.items))
	s.items = s.items[n:]

	return n
}

// RangeIterator yields the integers in [start, end).
type RangeIterator struct {
	next int
	end  int
}

// Range returns a skip-capable iterator over [start, end).
func Range(start, end int) *RangeIterator {
	return &RangeIterator{next: start, end: max(start, end)}
}

func (r *RangeIterator) Next() (int, bool) {
	if r.next >= r.end {
		return 0, false
	}

	v := r.next
	r.next++

	return v, true
}

func (r *RangeIterator) Len() int {
	return r.end - r.next
}

func (r *RangeIterator) Skip(n int) int {
	n = clampSkip(n, r.Len())
	r.next += n

	return n
}

// RepeatIterator yields the same item a fixed number of times.
type RepeatIterator[T any] struct {
	item      T
	remaining int
}

// Repeat returns a skip-capable iterator yielding item n times. It stands in
// for the validity of a required column, where every value is present.
func Repeat[T any](item T, n int) *RepeatIterator[T] {
	return &RepeatIterator[T]{item: item, remaining: max(n, 0)}
}

func (r *RepeatIterator[T]) Next() (T, bool) {
	if r.remaining == 0 {
		var zero T
		return zero, false
	}
	r.remaining--

	return r.item, true
}

func (r *RepeatIterator[T]) Len() int {
	return r.remaining
}

func (r *RepeatIterator[T]) Skip(n int) int {
	n = clampSkip(n, r.remaining)
	r.remaining -= n

	return n
}

func clampSkip(n, remaining int) int {
	return min(max(n, 0), remaining)
}
