package page

import (
	"fmt"

	"github.com/arloliu/pqpage/compress"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/format"
	"github.com/arloliu/pqpage/internal/pool"
)

// Decompress returns the uncompressed form of cp.
//
// V1 pages are decompressed as a whole. V2 pages keep their level sections
// verbatim and only the values section is decompressed, and not at all when
// IsCompressed is false. Uncompressed pages borrow cp's buffer; otherwise the
// output lives in a pooled buffer that the caller returns with Release.
//
// Returns:
//   - *DataPage: Uncompressed page
//   - error: ErrUnsupportedCompression, ErrInvalidPageVersion, ErrInvalidLevelsLength
//     or a codec error, wrapped
func Decompress(cp *CompressedPage) (*DataPage, error) {
	page := cp.Page
	page.pooled = nil

	if cp.Codec == format.CompressionUncompressed {
		return &page, nil
	}

	codec, err := compress.GetCodec(cp.Codec)
	if err != nil {
		return nil, err
	}

	switch page.Version {
	case format.PageV1:
		return decompressV1(&page, codec, cp.UncompressedSize)
	case format.PageV2:
		if !cp.IsCompressed {
			return &page, nil
		}

		return decompressV2(&page, codec, cp.UncompressedSize)
	default:
		return nil, fmt.Errorf("version %d: %w", page.Version, errs.ErrInvalidPageVersion)
	}
}

func decompressV1(page *DataPage, codec compress.Decompressor, size int) (*DataPage, error) {
	buf := pool.GetPageBuffer()

	out, err := codec.Decompress(buf.Sized(size), page.Buffer)
	if err != nil {
		pool.PutPageBuffer(buf)
		return nil, fmt.Errorf("decompress data page v1: %w", err)
	}

	buf.SetBytes(out)
	page.Buffer = out
	page.pooled = buf

	return page, nil
}

func decompressV2(page *DataPage, codec compress.Decompressor, size int) (*DataPage, error) {
	levelsLen := page.RepLevelsByteLength + page.DefLevelsByteLength
	if page.RepLevelsByteLength < 0 || page.DefLevelsByteLength < 0 || levelsLen > len(page.Buffer) {
		return nil, fmt.Errorf("decompress data page v2: level lengths exceed page size %d: %w",
			len(page.Buffer), errs.ErrInvalidLevelsLength)
	}

	buf := pool.GetPageBuffer()
	b := append(buf.Sized(max(size, levelsLen)), page.Buffer[:levelsLen]...)

	values, err := codec.Decompress(b[levelsLen:], page.Buffer[levelsLen:])
	if err != nil {
		pool.PutPageBuffer(buf)
		return nil, fmt.Errorf("decompress data page v2: %w", err)
	}

	// values already follows the levels when the codec wrote in place
	out := append(b[:levelsLen], values...)

	buf.SetBytes(out)
	page.Buffer = out
	page.pooled = buf

	return page, nil
}
