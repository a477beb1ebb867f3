package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/decimate/format"
)

// S2Compressor compresses payloads with S2, a faster Snappy-compatible format.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type implements Codec.
func (c S2Compressor) Type() format.CompressionType { return format.CompressionS2 }

// Compress compresses data with S2 block encoding.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. A known rawSize must match the length the block declares,
// which is checked before the output is allocated.
func (c S2Compressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if rawSize > 0 && n != rawSize {
		return nil, fmt.Errorf("s2 block decodes to %d bytes, expected %d", n, rawSize)
	}

	return s2.Decode(make([]byte, n), data)
}
