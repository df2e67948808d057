// Package pqpage decodes the values of Parquet data pages.
//
// The sub-packages hold the building blocks: page splits a data page into its
// level and value sections, compress restores compressed pages, encoding holds
// the pull decoders and iterator combinators, and bloom probes column chunk
// bloom filters. This package wires them together for the common cases.
//
// # Reading an optional column
//
// An optional column page stores one definition level per row and one PLAIN
// value per non-null row. NewOptionalReader merges both streams:
//
//	p, err := page.Decompress(compressed)
//	if err != nil {
//	    return err
//	}
//	defer p.Release()
//
//	reader, err := pqpage.NewOptionalReader[int64](p)
//	if err != nil {
//	    return err
//	}
//	for v := range encoding.All(reader) {
//	    if x, ok := v.Get(); ok {
//	        fmt.Println(x)
//	    }
//	}
//
// # Row selection
//
// WithRowSelection narrows a reader to a set of page-local row intervals.
// Rows outside the selection are skipped in bulk without being decoded:
//
//	reader, err := pqpage.NewOptionalReader[float64](p,
//	    pqpage.WithRowSelection([]encoding.Interval{{Start: 0, Length: 2}, {Start: 20, Length: 11}}),
//	)
//
// Rows are level entries, so selections apply to flat columns. Repeated columns
// can still be read, but a selected position is then a value slot, not a record.
package pqpage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/pqpage/encoding"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/internal/options"
	"github.com/arloliu/pqpage/page"
)

type readerConfig struct {
	selection    []encoding.Interval
	hasSelection bool
	validate     bool
	parallelism  int
}

func newReaderConfig(opts []ReaderOption) (*readerConfig, error) {
	cfg := &readerConfig{validate: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.hasSelection && cfg.validate {
		if err := encoding.ValidateIntervals(cfg.selection); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ReaderOption configures NewOptionalReader, NewDictIndicesReader and
// DecodePages.
type ReaderOption = options.Option[*readerConfig]

// WithRowSelection restricts a reader to the rows inside selection.
//
// For NewOptionalReader and NewDictIndicesReader the rows are page-local. For
// DecodePages they are counted from the first row of the first page.
func WithRowSelection(selection []encoding.Interval) ReaderOption {
	return options.NoError("WithRowSelection", func(cfg *readerConfig) {
		cfg.selection = selection
		cfg.hasSelection = true
	})
}

// WithSelectionValidation toggles the ascending, non-overlapping check on the
// row selection. It is enabled by default.
func WithSelectionValidation(enabled bool) ReaderOption {
	return options.NoError("WithSelectionValidation", func(cfg *readerConfig) {
		cfg.validate = enabled
	})
}

// WithParallelism bounds the number of pages DecodePages decodes at once.
// Readers ignore it.
func WithParallelism(n int) ReaderOption {
	return options.New("WithParallelism", func(cfg *readerConfig) error {
		if n <= 0 {
			return fmt.Errorf("%d: %w", n, errs.ErrInvalidParallelism)
		}
		cfg.parallelism = n

		return nil
	})
}

// NewOptionalReader returns one Optional[T] per row of a PLAIN encoded page.
//
// Rows whose definition level is below the column maximum are absent. A
// required column yields only present items.
//
// Parameters:
//   - p: Decompressed data page
//   - opts: WithRowSelection, WithSelectionValidation
//
// Returns:
//   - encoding.Iterator[encoding.Optional[T]]: Row iterator
//   - error: Level section, encoding or selection errors
func NewOptionalReader[T encoding.Fixed](p *page.DataPage, opts ...ReaderOption) (encoding.Iterator[encoding.Optional[T]], error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	return newOptionalReader[T](p, cfg.selection, cfg.hasSelection)
}

func newOptionalReader[T encoding.Fixed](p *page.DataPage, selection []encoding.Interval, hasSelection bool) (encoding.Iterator[encoding.Optional[T]], error) {
	validity, err := page.Validity(p)
	if err != nil {
		return nil, err
	}

	values, err := page.PlainValues[T](p)
	if err != nil {
		return nil, err
	}

	rows := encoding.NewOptionalValues[T](validity, values)
	if !hasSelection {
		return rows, nil
	}

	return encoding.NewSliceFilteredUnchecked[encoding.Optional[T]](rows, selection), nil
}

// NewDictIndicesReader returns the dictionary indices of a dictionary encoded
// page, one per non-null value.
//
// A row selection is applied to non-null values, so it matches rows only for
// required columns.
func NewDictIndicesReader(p *page.DataPage, opts ...ReaderOption) (encoding.Iterator[uint32], error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	indices, err := page.DictIndices(p)
	if err != nil {
		return nil, err
	}

	if !cfg.hasSelection {
		return indices, nil
	}

	return encoding.NewSliceFilteredUnchecked[uint32](indices, cfg.selection), nil
}

// DecodePages decodes consecutive pages of one PLAIN encoded column chunk into
// one slice per page.
//
// Pages are decoded concurrently, at most WithParallelism at a time (default:
// one per page). A row selection is counted from the first row of pages[0] and
// split across pages by their level counts; a page outside the selection yields
// an empty slice. Decoding stops at the first error or when ctx is done.
//
// Parameters:
//   - ctx: Cancellation for the whole batch
//   - pages: Decompressed data pages in row order
//   - opts: WithRowSelection, WithSelectionValidation, WithParallelism
//
// Returns:
//   - [][]encoding.Optional[T]: Decoded rows, indexed like pages
//   - error: First page error, wrapped with the page index, or ctx.Err()
func DecodePages[T encoding.Fixed](ctx context.Context, pages []*page.DataPage, opts ...ReaderOption) ([][]encoding.Optional[T], error) {
	cfg, err := newReaderConfig(opts)
	if err != nil {
		return nil, err
	}

	out := make([][]encoding.Optional[T], len(pages))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.parallelism > 0 {
		g.SetLimit(cfg.parallelism)
	}

	firstRow := 0
	for i, p := range pages {
		rows := p.NumValues

		var selection []encoding.Interval
		if cfg.hasSelection {
			selection = encoding.IntersectIntervals(cfg.selection, firstRow, rows)
		}
		firstRow += rows

		if cfg.hasSelection && len(selection) == 0 {
			out[i] = []encoding.Optional[T]{}
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reader, err := newOptionalReader[T](p, selection, cfg.hasSelection)
			if err != nil {
				return fmt.Errorf("page %d: %w", i, err)
			}

			values := make([]encoding.Optional[T], 0, reader.Len())
			for v := range encoding.All(reader) {
				values = append(values, v)
			}
			out[i] = values

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
