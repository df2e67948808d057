package encoding

// SliceFiltered yields only the source items whose positions fall inside a row
// selection.
//
// Positions are counted from 0 on the source. Gaps between intervals are
// skipped in bulk through Skip, so a decoder implementing Skipper never
// materializes the discarded rows. Once the last interval has been emitted the
// iterator is exhausted for good, even if the source has more items.
//
// Note: SliceFiltered is NOT thread-safe.
type SliceFiltered[T any] struct {
	src       Iterator[T]
	selection []Interval // intervals not started yet
	pos       int        // source position of the next item pulled from src
	inRun     int        // items left in the interval being emitted
	total     int        // selected items not emitted yet
}

var (
	_ Iterator[int] = (*SliceFiltered[int])(nil)
	_ Skipper       = (*SliceFiltered[int])(nil)
)

// NewSliceFiltered creates a filtered view of src.
//
// Parameters:
//   - src: Source iterator, positioned at row 0
//   - selection: Ascending, non-overlapping, non-empty intervals
//
// Returns:
//   - *SliceFiltered[T]: Filtered iterator
//   - error: ErrInvalidSelection (wrapped) when selection is malformed
func NewSliceFiltered[T any](src Iterator[T], selection []Interval) (*SliceFiltered[T], error) {
	if err := ValidateIntervals(selection); err != nil {
		return nil, err
	}

	return NewSliceFilteredUnchecked(src, selection), nil
}

// NewSliceFilteredUnchecked is NewSliceFiltered without validation. The result
// is undefined when selection is malformed.
func NewSliceFilteredUnchecked[T any](src Iterator[T], selection []Interval) *SliceFiltered[T] {
	return &SliceFiltered[T]{
		src:       src,
		selection: selection,
		total:     TotalRows(selection),
	}
}

// Next returns the next selected item.
func (s *SliceFiltered[T]) Next() (T, bool) {
	if s.inRun == 0 && !s.startInterval() {
		var zero T
		return zero, false
	}

	v, ok := s.src.Next()
	if !ok {
		s.terminate()
		return v, false
	}

	s.pos++
	s.inRun--
	s.total--

	return v, true
}

// Len returns the smaller of the source length and the number of selected
// items not emitted yet.
func (s *SliceFiltered[T]) Len() int {
	return min(s.src.Len(), s.total)
}

// Skip advances past up to n selected items.
func (s *SliceFiltered[T]) Skip(n int) int {
	skipped := 0
	for skipped < n {
		if s.inRun == 0 && !s.startInterval() {
			break
		}

		want := min(s.inRun, n-skipped)
		got := Skip(s.src, want)
		s.pos += got
		s.inRun -= got
		s.total -= got
		skipped += got

		if got < want {
			s.terminate()
			break
		}
	}

	return skipped
}

// startInterval pops the next interval and skips the source up to its start.
func (s *SliceFiltered[T]) startInterval() bool {
	if len(s.selection) == 0 {
		return false
	}

	iv := s.selection[0]
	s.selection = s.selection[1:]

	gap := iv.Start - s.pos
	if gap > 0 {
		got := Skip(s.src, gap)
		s.pos += got
		if got < gap {
			s.terminate()
			return false
		}
	}

	s.inRun = iv.Length

	return true
}

func (s *SliceFiltered[T]) terminate() {
	s.selection = nil
	s.inRun = 0
	s.total = 0
}
