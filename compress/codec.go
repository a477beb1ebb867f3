package compress

import (
	"fmt"

	"github.com/arloliu/decimate/format"
)

// Compressor compresses a snapshot payload.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	// Implementations may return data itself when no transformation is applied.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the original bytes. rawSize is the expected output length
	// when known, or <= 0 otherwise. Corrupted input yields an error.
	Decompress(data []byte, rawSize int) ([]byte, error)
}

// Codec combines both directions and reports its compression type.
type Codec interface {
	Compressor
	Decompressor

	Type() format.CompressionType
}

// maxPrealloc caps how much a codec allocates up front from a caller-supplied rawSize.
// Larger outputs grow as they decode, so a forged size cannot force a huge allocation.
const maxPrealloc = 1 << 20

func preallocSize(rawSize int) int {
	return max(0, min(rawSize, maxPrealloc))
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s (0x%x)", compressionType, uint8(compressionType))
}

// Ratio returns compressed/original, or 0 when original is 0.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}
