// Package snapshot serializes a downsampled series into a compact, checksummed binary
// blob so it can be cached or shipped to a renderer.
//
// # Layout
//
// A snapshot is a fixed 36-byte header followed by the (optionally compressed) payload:
//
//	offset  size  field
//	0       4     magic "DCSN"
//	4       1     version (1)
//	5       1     flags: bit0 big-endian, bit1 boolean y
//	6       1     index encoding (format.TypeRaw or format.TypeDelta)
//	7       1     compression (format.CompressionType)
//	8       4     point count
//	12      4     stored payload length
//	16      4     raw payload length
//	20      8     name ID (xxHash64 of the name)
//	28      8     checksum (xxHash64 of the raw payload)
//
// The raw payload holds the uvarint-prefixed name, count x values and count y values as
// IEEE-754 bits, then count source row indices (uint32 each for TypeRaw, uvarint deltas
// for TypeDelta). Multi-byte fields use the byte order flagged in the header.
//
// # Usage
//
//	snap, err := snapshot.FromTable("cpu.usage", sel.Table, sel.Indices)
//	if err != nil {
//	    return err
//	}
//	data, err := snapshot.Encode(snap, snapshot.WithCompression(format.CompressionZstd))
//	...
//	decoded, err := snapshot.Decode(data)
package snapshot
