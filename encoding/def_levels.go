package encoding

import (
	"math/bits"

	"github.com/arloliu/pqpage/errs"
)

// DefLevelsDecoder decodes the definition levels of a page.
//
// The representation is chosen once, at construction, from the column's
// maximum definition level:
//
//   - *BitmapDefLevels when the maximum is 1. Levels are a width-1 hybrid RLE
//     stream read directly as a validity bitmap.
//   - *MultiLevelDefLevels when the maximum is greater than 1, or whenever
//     levels use the BIT_PACKED encoding. Levels are full integers.
//
// Use a type switch to reach the variant-specific API. Both variants yield
// exactly numValues items and expose a validity view where level == max means
// the value is present.
type DefLevelsDecoder interface {
	// MaxLevel returns the maximum definition level of the column.
	MaxLevel() uint32
	// Len returns the number of levels left.
	Len() int
	// Validity returns a view of the remaining levels as presence flags. It
	// shares state with the decoder.
	Validity() Iterator[bool]
	// Err reports a malformed or truncated level stream.
	Err() error

	isDefLevels()
}

var (
	_ DefLevelsDecoder = (*BitmapDefLevels)(nil)
	_ DefLevelsDecoder = (*MultiLevelDefLevels)(nil)
	_ Iterator[uint32] = (*MultiLevelDefLevels)(nil)
	_ Skipper          = (*MultiLevelDefLevels)(nil)
	_ Iterator[bool]   = (*levelValidity)(nil)
	_ Skipper          = (*levelValidity)(nil)
)

// LevelBitWidth returns the number of bits used to store levels up to maxLevel,
// i.e. ceil(log2(maxLevel+1)).
func LevelBitWidth(maxLevel int16) uint8 {
	if maxLevel <= 0 {
		return 0
	}

	return uint8(bits.Len16(uint16(maxLevel)))
}

// NewDefLevelsDecoder creates the definition level decoder for a hybrid RLE
// encoded level section.
//
// Parameters:
//   - data: Level bytes, without the V1 length prefix
//   - maxDefLevel: Maximum definition level of the column; must be positive
//   - numValues: Number of levels in the page
//
// Returns:
//   - DefLevelsDecoder: *BitmapDefLevels when maxDefLevel is 1, otherwise
//     *MultiLevelDefLevels
//   - error: ErrInvalidMaxLevel, or the underlying decoder's construction error
func NewDefLevelsDecoder(data []byte, maxDefLevel int16, numValues int) (DefLevelsDecoder, error) {
	if maxDefLevel <= 0 {
		return nil, errs.ErrInvalidMaxLevel
	}

	if maxDefLevel == 1 {
		bitmap, err := NewHybridBitmapDecoder(data, numValues)
		if err != nil {
			return nil, err
		}

		return &BitmapDefLevels{HybridBitmapDecoder: bitmap}, nil
	}

	levels, err := NewLevelsDecoder(data, maxDefLevel, numValues)
	if err != nil {
		return nil, err
	}

	return &MultiLevelDefLevels{levels: levels, maxLevel: uint32(maxDefLevel)}, nil
}

// NewBitPackedDefLevels creates a definition level decoder for the deprecated
// BIT_PACKED level encoding. It always uses the multi-level representation.
func NewBitPackedDefLevels(data []byte, maxDefLevel int16, numValues int) (*MultiLevelDefLevels, error) {
	if maxDefLevel <= 0 {
		return nil, errs.ErrInvalidMaxLevel
	}

	levels, err := NewBitPackedDecoder(data, LevelBitWidth(maxDefLevel), numValues)
	if err != nil {
		return nil, err
	}

	return &MultiLevelDefLevels{levels: levels, maxLevel: uint32(maxDefLevel)}, nil
}

// NewLevelsDecoder creates a hybrid RLE decoder for levels up to maxLevel. It
// serves repetition levels and multi-level definition levels.
func NewLevelsDecoder(data []byte, maxLevel int16, numValues int) (*HybridRLEDecoder, error) {
	if maxLevel <= 0 {
		return nil, errs.ErrInvalidMaxLevel
	}

	return NewHybridRLEDecoder(data, LevelBitWidth(maxLevel), numValues)
}

// BitmapDefLevels holds definition levels of a column whose maximum level is 1.
// Every level is either 0 (null) or 1 (present), read as a boolean.
type BitmapDefLevels struct {
	*HybridBitmapDecoder
}

func (b *BitmapDefLevels) MaxLevel() uint32 { return 1 }

func (b *BitmapDefLevels) Validity() Iterator[bool] { return b.HybridBitmapDecoder }

func (b *BitmapDefLevels) isDefLevels() {}

// MultiLevelDefLevels holds definition levels of a column whose maximum level
// is greater than 1, or whose levels are BIT_PACKED encoded.
type MultiLevelDefLevels struct {
	levels   Iterator[uint32]
	maxLevel uint32
}

func (m *MultiLevelDefLevels) MaxLevel() uint32 { return m.maxLevel }

// Next returns the next definition level.
func (m *MultiLevelDefLevels) Next() (uint32, bool) { return m.levels.Next() }

func (m *MultiLevelDefLevels) Len() int { return m.levels.Len() }

func (m *MultiLevelDefLevels) Skip(n int) int { return Skip(m.levels, n) }

func (m *MultiLevelDefLevels) Validity() Iterator[bool] {
	return &levelValidity{levels: m.levels, maxLevel: m.maxLevel}
}

func (m *MultiLevelDefLevels) Err() error {
	if e, ok := m.levels.(interface{ Err() error }); ok {
		return e.Err()
	}

	return nil
}

func (m *MultiLevelDefLevels) isDefLevels() {}

// levelValidity maps levels to level == maxLevel.
type levelValidity struct {
	levels   Iterator[uint32]
	maxLevel uint32
}

func (v *levelValidity) Next() (bool, bool) {
	level, ok := v.levels.Next()
	if !ok {
		return false, false
	}

	return level == v.maxLevel, true
}

func (v *levelValidity) Len() int { return v.levels.Len() }

func (v *levelValidity) Skip(n int) int { return Skip(v.levels, n) }
