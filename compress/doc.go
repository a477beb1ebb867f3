// Package compress provides the general-purpose compression codecs applied to
// snapshot payloads.
//
// A snapshot payload is the already-serialized downsampled series (name, x column,
// y column, row indices). Compression is a second stage on top of that layout and is
// selected per snapshot with a format.CompressionType:
//
//   - format.CompressionNone: payload stored as-is
//   - format.CompressionZstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - format.CompressionS2: balanced speed and ratio (klauspost/compress/s2)
//   - format.CompressionLZ4: fastest decompression (pierrec/lz4 block format)
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, len(payload))
//
// Decompress takes the raw payload size recorded by the snapshot header so codecs can
// allocate the output once. A rawSize of 0 or less means unknown.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool where the underlying library
// benefits from reuse, and are safe for concurrent use.
package compress
