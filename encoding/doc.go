// Package encoding decodes the value and level encodings found in Parquet data
// pages.
//
// Every decoder is a pull-based Iterator that borrows a sub-slice of the page
// buffer, owns no bytes and allocates nothing per value. Decoders that can jump
// over data without materializing it also implement Skipper.
//
// # Decoders
//
//   - BitPackedDecoder: the deprecated BIT_PACKED encoding (MSB-first, 32 values
//     per block)
//   - HybridRLEDecoder: the RLE/bit-packed hybrid used for dictionary indices
//     and levels; NewDictIndicesDecoder reads the leading bit width byte
//   - HybridBitmapDecoder: the width-1 hybrid stream read as booleans
//   - DefLevelsDecoder: definition levels, either *BitmapDefLevels or
//     *MultiLevelDefLevels depending on the maximum level
//   - PlainDecoder, PlainBoolDecoder: PLAIN fixed-width values
//
// # Combinators
//
//   - OptionalValues merges a validity stream with the non-null values into
//     Optional items.
//   - SliceFiltered keeps only the rows inside a selection of Intervals.
//
// A typical nullable column page combines them:
//
//	levels, _ := encoding.NewDefLevelsDecoder(defBytes, 1, numValues)
//	values := encoding.NewPlainDecoder[int64](valueBytes)
//	rows := encoding.NewOptionalValues[int64](levels.Validity(), values)
//	for row := range encoding.All[encoding.Optional[int64]](rows) {
//	    if v, ok := row.Get(); ok {
//	        fmt.Println(v)
//	    }
//	}
//
// # Thread Safety
//
// Decoders and combinators are NOT thread-safe. Pages are independent, so
// separate pages may be decoded concurrently with separate decoders.
package encoding
