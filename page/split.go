package page

import (
	"fmt"

	"github.com/arloliu/pqpage/encoding"
	"github.com/arloliu/pqpage/endian"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/format"
	"github.com/arloliu/pqpage/internal/bitpack"
)

// levelsPrefixSize is the size of the V1 level section length prefix.
const levelsPrefixSize = 4

// SplitBuffer splits the page buffer into its repetition level, definition
// level and values sections. The returned slices alias p.Buffer.
//
// Returns:
//   - rep, def: Level sections without any length prefix; empty when the
//     column has no such levels
//   - values: Values section
//   - error: ErrInvalidLevelsLength (wrapped) when a level length points past
//     the buffer, ErrUnsupportedEncoding for a V1 level encoding other than RLE
//     or BIT_PACKED, ErrInvalidPageVersion for unknown versions
func SplitBuffer(p *DataPage) (rep, def, values []byte, err error) {
	switch p.Version {
	case format.PageV1:
		return splitBufferV1(p)
	case format.PageV2:
		return splitBufferV2(p)
	default:
		return nil, nil, nil, fmt.Errorf("version %d: %w", p.Version, errs.ErrInvalidPageVersion)
	}
}

func splitBufferV1(p *DataPage) (rep, def, values []byte, err error) {
	buf := p.Buffer

	rep, buf, err = levelSectionV1(buf, p.RepetitionLevelEncoding, p.Descriptor.MaxRepLevel, p.NumValues)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("repetition levels: %w", err)
	}

	def, buf, err = levelSectionV1(buf, p.DefinitionLevelEncoding, p.Descriptor.MaxDefLevel, p.NumValues)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("definition levels: %w", err)
	}

	return rep, def, buf, nil
}

// levelSectionV1 cuts one V1 level section off the front of buf.
func levelSectionV1(buf []byte, enc format.Encoding, maxLevel int16, numValues int) (section, rest []byte, err error) {
	if maxLevel <= 0 {
		return nil, buf, nil
	}

	switch enc {
	case format.EncodingRLE:
		if len(buf) < levelsPrefixSize {
			return nil, nil, fmt.Errorf("missing length prefix: %w", errs.ErrInvalidLevelsLength)
		}

		n := int(endian.GetLittleEndianEngine().Uint32(buf))
		buf = buf[levelsPrefixSize:]
		if n > len(buf) {
			return nil, nil, fmt.Errorf("length %d exceeds %d remaining bytes: %w", n, len(buf), errs.ErrInvalidLevelsLength)
		}

		return buf[:n], buf[n:], nil

	case format.EncodingBitPacked:
		n := bitpack.ByteCount(numValues, encoding.LevelBitWidth(maxLevel))
		if n > len(buf) {
			return nil, nil, fmt.Errorf("length %d exceeds %d remaining bytes: %w", n, len(buf), errs.ErrInvalidLevelsLength)
		}

		return buf[:n], buf[n:], nil

	default:
		return nil, nil, fmt.Errorf("level encoding %s: %w", enc, errs.ErrUnsupportedEncoding)
	}
}

func splitBufferV2(p *DataPage) (rep, def, values []byte, err error) {
	repLen, defLen := p.RepLevelsByteLength, p.DefLevelsByteLength
	if repLen < 0 || defLen < 0 || repLen+defLen > len(p.Buffer) {
		return nil, nil, nil, fmt.Errorf("level lengths %d+%d exceed page size %d: %w",
			repLen, defLen, len(p.Buffer), errs.ErrInvalidLevelsLength)
	}

	rep = p.Buffer[:repLen]
	def = p.Buffer[repLen : repLen+defLen]
	values = p.Buffer[repLen+defLen:]

	return rep, def, values, nil
}
