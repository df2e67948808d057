package encoding

import (
	"fmt"

	"github.com/arloliu/pqpage/errs"
)

// Interval is a run of consecutive rows [Start, Start+Length).
type Interval struct {
	Start  int
	Length int
}

// End returns the first row after the interval.
func (i Interval) End() int {
	return i.Start + i.Length
}

// ValidateIntervals checks that selection is usable as a row selection: every
// interval is non-empty with a non-negative start, and intervals are ascending
// and non-overlapping. Adjacent intervals are allowed.
func ValidateIntervals(selection []Interval) error {
	prevEnd := 0
	for i, iv := range selection {
		if iv.Length <= 0 {
			return fmt.Errorf("interval %d has length %d: %w", i, iv.Length, errs.ErrInvalidSelection)
		}

		if iv.Start < prevEnd {
			return fmt.Errorf("interval %d starts at %d before row %d: %w", i, iv.Start, prevEnd, errs.ErrInvalidSelection)
		}

		prevEnd = iv.End()
	}

	return nil
}

// TotalRows returns the number of rows covered by selection.
func TotalRows(selection []Interval) int {
	total := 0
	for _, iv := range selection {
		total += iv.Length
	}

	return total
}

// IntersectIntervals restricts a row-group level selection to the page holding
// rows [pageFirstRow, pageFirstRow+pageRows) and rebases it to page-local row
// numbers. selection must be valid.
func IntersectIntervals(selection []Interval, pageFirstRow, pageRows int) []Interval {
	pageEnd := pageFirstRow + pageRows

	var out []Interval
	for _, iv := range selection {
		if iv.End() <= pageFirstRow {
			continue
		}

		if iv.Start >= pageEnd {
			break
		}

		start := max(iv.Start, pageFirstRow)
		end := min(iv.End(), pageEnd)
		out = append(out, Interval{Start: start - pageFirstRow, Length: end - start})
	}

	return out
}
