package format

type (
	Encoding         int32
	CompressionCodec int32
	PageVersion      uint8
)

// Encoding values match the parquet-format thrift enum.
const (
	EncodingPlain                Encoding = 0 // EncodingPlain represents PLAIN.
	EncodingPlainDictionary      Encoding = 2 // EncodingPlainDictionary represents the deprecated PLAIN_DICTIONARY.
	EncodingRLE                  Encoding = 3 // EncodingRLE represents the hybrid RLE/bit-packed encoding.
	EncodingBitPacked            Encoding = 4 // EncodingBitPacked represents the deprecated BIT_PACKED.
	EncodingDeltaBinaryPacked    Encoding = 5 // EncodingDeltaBinaryPacked represents DELTA_BINARY_PACKED.
	EncodingDeltaLengthByteArray Encoding = 6 // EncodingDeltaLengthByteArray represents DELTA_LENGTH_BYTE_ARRAY.
	EncodingDeltaByteArray       Encoding = 7 // EncodingDeltaByteArray represents DELTA_BYTE_ARRAY.
	EncodingRLEDictionary        Encoding = 8 // EncodingRLEDictionary represents RLE_DICTIONARY.
	EncodingByteStreamSplit      Encoding = 9 // EncodingByteStreamSplit represents BYTE_STREAM_SPLIT.
)

// CompressionCodec values match the parquet-format thrift enum.
const (
	CompressionUncompressed CompressionCodec = 0
	CompressionSnappy       CompressionCodec = 1
	CompressionGzip         CompressionCodec = 2
	CompressionLZO          CompressionCodec = 3
	CompressionBrotli       CompressionCodec = 4
	CompressionLZ4          CompressionCodec = 5 // Hadoop-framed LZ4, deprecated.
	CompressionZstd         CompressionCodec = 6
	CompressionLZ4Raw       CompressionCodec = 7
)

const (
	PageV1 PageVersion = 0x1 // PageV1 represents DATA_PAGE.
	PageV2 PageVersion = 0x2 // PageV2 represents DATA_PAGE_V2.
)

// IsDictionary reports whether values encoded with e are dictionary indices.
func (e Encoding) IsDictionary() bool {
	return e == EncodingPlainDictionary || e == EncodingRLEDictionary
}

func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "PLAIN"
	case EncodingPlainDictionary:
		return "PLAIN_DICTIONARY"
	case EncodingRLE:
		return "RLE"
	case EncodingBitPacked:
		return "BIT_PACKED"
	case EncodingDeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case EncodingDeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case EncodingDeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case EncodingRLEDictionary:
		return "RLE_DICTIONARY"
	case EncodingByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "Unknown"
	}
}

func (c CompressionCodec) String() string {
	switch c {
	case CompressionUncompressed:
		return "UNCOMPRESSED"
	case CompressionSnappy:
		return "SNAPPY"
	case CompressionGzip:
		return "GZIP"
	case CompressionLZO:
		return "LZO"
	case CompressionBrotli:
		return "BROTLI"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "ZSTD"
	case CompressionLZ4Raw:
		return "LZ4_RAW"
	default:
		return "Unknown"
	}
}

func (v PageVersion) String() string {
	switch v {
	case PageV1:
		return "V1"
	case PageV2:
		return "V2"
	default:
		return "Unknown"
	}
}
