package compress

import (
	"fmt"

	"github.com/arloliu/decimate/format"
)

// NoOpCompressor passes payloads through unchanged.
//
// Both directions return the input slice itself, so callers must not modify the input
// while the result is in use.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type implements Codec.
func (c NoOpCompressor) Type() format.CompressionType { return format.CompressionNone }

// Compress returns data as-is.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is after checking rawSize when it is known.
func (c NoOpCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if rawSize > 0 && len(data) != rawSize {
		return nil, fmt.Errorf("uncompressed payload is %d bytes, expected %d", len(data), rawSize)
	}

	return data, nil
}
