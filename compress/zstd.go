package compress

import "github.com/arloliu/decimate/format"

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd gives the best ratio of the built-in codecs and suits snapshots that are archived
// or sent over constrained links. The implementation is chosen at build time: the pure Go
// klauspost/compress encoder by default, or the cgo gozstd binding
// when built with the gozstd tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type implements Codec.
func (c ZstdCompressor) Type() format.CompressionType { return format.CompressionZstd }
