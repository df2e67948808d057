// Package page holds Parquet data pages and splits them into the sections the
// encoding decoders read.
//
// A data page buffer is laid out as repetition levels, then definition levels,
// then values. How the three sections are delimited depends on the page
// version:
//
//   - DATA_PAGE (V1): each level section present in the column is prefixed by
//     its byte length as a 4-byte little-endian integer when RLE encoded, or
//     has the implicit length ceil(numValues*bitWidth/8) when BIT_PACKED. The
//     whole buffer is compressed.
//   - DATA_PAGE_V2: the header carries both level section lengths and only the
//     values section is compressed.
//
// DataPage is a plain struct filled from an already parsed page header; this
// package does not read Thrift.
package page

import (
	"github.com/arloliu/pqpage/format"
	"github.com/arloliu/pqpage/internal/pool"
)

// Descriptor describes the column a page belongs to.
type Descriptor struct {
	// MaxDefLevel is the maximum definition level; 0 for required columns.
	MaxDefLevel int16
	// MaxRepLevel is the maximum repetition level; 0 for non-repeated columns.
	MaxRepLevel int16
}

// DataPage is an uncompressed data page.
//
// Buffer is split into sub-slices by SplitBuffer; decoders built from the page
// borrow those sub-slices and must not be used after Release.
type DataPage struct {
	Version format.PageVersion
	// NumValues is the number of level entries, nulls included.
	NumValues int
	// NumNulls and NumRows are only set for V2 pages.
	NumNulls int
	NumRows  int

	Encoding format.Encoding
	// DefinitionLevelEncoding and RepetitionLevelEncoding are only meaningful
	// for V1 pages; V2 levels are always RLE.
	DefinitionLevelEncoding format.Encoding
	RepetitionLevelEncoding format.Encoding
	// DefLevelsByteLength and RepLevelsByteLength are only set for V2 pages.
	DefLevelsByteLength int
	RepLevelsByteLength int

	Descriptor Descriptor
	Buffer     []byte

	pooled *pool.ByteBuffer
}

// Release returns the page buffer to the pool when it came from Decompress.
// Buffer is cleared; the page and every decoder built from it must not be used
// afterwards. Release is idempotent.
func (p *DataPage) Release() {
	if p.pooled != nil {
		pool.PutPageBuffer(p.pooled)
		p.pooled = nil
	}
	p.Buffer = nil
}

// CompressedPage is a data page as read from the file.
type CompressedPage struct {
	// Page holds the header fields; Page.Buffer is the compressed payload.
	Page DataPage
	// Codec is the column chunk's compression codec.
	Codec format.CompressionCodec
	// UncompressedSize is the page header's uncompressed_page_size, which
	// includes the level sections.
	UncompressedSize int
	// IsCompressed mirrors the V2 header flag; V1 pages ignore it.
	IsCompressed bool
}
