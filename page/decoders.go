package page

import (
	"fmt"

	"github.com/arloliu/pqpage/encoding"
	"github.com/arloliu/pqpage/errs"
	"github.com/arloliu/pqpage/format"
)

// DefLevels returns the definition level decoder of p.
//
// The decoder is *encoding.BitmapDefLevels when the column's maximum
// definition level is 1 and the levels are hybrid RLE encoded, and
// *encoding.MultiLevelDefLevels otherwise. Required columns have no
// definition levels and return ErrInvalidMaxLevel.
func DefLevels(p *DataPage) (encoding.DefLevelsDecoder, error) {
	_, def, _, err := SplitBuffer(p)
	if err != nil {
		return nil, err
	}

	maxLevel := p.Descriptor.MaxDefLevel
	if p.Version == format.PageV1 && p.DefinitionLevelEncoding == format.EncodingBitPacked {
		levels, err := encoding.NewBitPackedDefLevels(def, maxLevel, p.NumValues)
		if err != nil {
			return nil, err
		}

		return levels, nil
	}

	return encoding.NewDefLevelsDecoder(def, maxLevel, p.NumValues)
}

// RepLevels returns the repetition level decoder of p.
func RepLevels(p *DataPage) (encoding.Iterator[uint32], error) {
	rep, _, _, err := SplitBuffer(p)
	if err != nil {
		return nil, err
	}

	maxLevel := p.Descriptor.MaxRepLevel
	if maxLevel <= 0 {
		return nil, errs.ErrInvalidMaxLevel
	}

	if p.Version == format.PageV1 && p.RepetitionLevelEncoding == format.EncodingBitPacked {
		levels, err := encoding.NewBitPackedDecoder(rep, encoding.LevelBitWidth(maxLevel), p.NumValues)
		if err != nil {
			return nil, err
		}

		return levels, nil
	}

	levels, err := encoding.NewLevelsDecoder(rep, maxLevel, p.NumValues)
	if err != nil {
		return nil, err
	}

	return levels, nil
}

// Validity returns one presence flag per level entry of p. Every entry of a
// required column is present.
func Validity(p *DataPage) (encoding.Iterator[bool], error) {
	if p.Descriptor.MaxDefLevel <= 0 {
		return encoding.Repeat(true, p.NumValues), nil
	}

	levels, err := DefLevels(p)
	if err != nil {
		return nil, err
	}

	return levels.Validity(), nil
}

// NonNullValues returns the number of values stored in the values section of p.
//
// V2 headers carry the null count. V1 pages do not, so their definition levels
// are scanned.
func NonNullValues(p *DataPage) (int, error) {
	if p.Descriptor.MaxDefLevel <= 0 {
		return p.NumValues, nil
	}

	if p.Version == format.PageV2 {
		return p.NumValues - p.NumNulls, nil
	}

	levels, err := DefLevels(p)
	if err != nil {
		return 0, err
	}

	var set int
	if bitmap, ok := levels.(*encoding.BitmapDefLevels); ok {
		_, set = bitmap.CountSet(p.NumValues)
	} else {
		for valid := range encoding.All(levels.Validity()) {
			if valid {
				set++
			}
		}
	}

	if err := levels.Err(); err != nil {
		return 0, fmt.Errorf("definition levels: %w", err)
	}

	return set, nil
}

// DictIndices returns the dictionary index decoder of a dictionary encoded page.
//
// The decoder yields one index per non-null value.
func DictIndices(p *DataPage) (*encoding.HybridRLEDecoder, error) {
	if !p.Encoding.IsDictionary() {
		return nil, fmt.Errorf("dictionary indices from %s page: %w", p.Encoding, errs.ErrUnsupportedEncoding)
	}

	_, _, values, err := SplitBuffer(p)
	if err != nil {
		return nil, err
	}

	n, err := NonNullValues(p)
	if err != nil {
		return nil, err
	}

	return encoding.NewDictIndicesDecoder(values, n)
}

// PlainValues returns the decoder of a PLAIN encoded fixed-width values section.
func PlainValues[T encoding.Fixed](p *DataPage) (*encoding.PlainDecoder[T], error) {
	if p.Encoding != format.EncodingPlain {
		return nil, fmt.Errorf("plain values from %s page: %w", p.Encoding, errs.ErrUnsupportedEncoding)
	}

	_, _, values, err := SplitBuffer(p)
	if err != nil {
		return nil, err
	}

	return encoding.NewPlainDecoder[T](values), nil
}
