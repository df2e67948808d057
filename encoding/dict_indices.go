package encoding

import "github.com/arloliu/pqpage/errs"

// NewDictIndicesDecoder creates a decoder for the values section of an
// RLE_DICTIONARY or PLAIN_DICTIONARY page.
//
// The first byte of values is the bit width of the indices; the rest is a
// hybrid RLE stream.
//
// Parameters:
//   - values: Values section of the page
//   - numValues: Number of non-null values in the page
//
// Returns:
//   - *HybridRLEDecoder: Decoder yielding exactly numValues indices
//   - error: ErrEmptyBuffer when values is empty and numValues > 0,
//     ErrInvalidBitWidth when the width byte exceeds 32
func NewDictIndicesDecoder(values []byte, numValues int) (*HybridRLEDecoder, error) {
	if numValues < 0 {
		return nil, errs.ErrInvalidLength
	}

	if len(values) == 0 {
		if numValues > 0 {
			return nil, errs.ErrEmptyBuffer
		}

		return NewHybridRLEDecoder(nil, 0, 0)
	}

	numBits := values[0]
	if numBits > MaxBitWidth {
		return nil, errs.ErrInvalidBitWidth
	}

	// a zero width with no runs is a page where every index is 0
	if numBits == 0 && len(values) == 1 {
		return &HybridRLEDecoder{
			run:         Run{Kind: RunRLE, Length: numValues},
			loadedGroup: -1,
			remaining:   numValues,
		}, nil
	}

	return NewHybridRLEDecoder(values[1:], numBits, numValues)
}
