// Package format defines the enumerations shared by decimate packages: the closed set
// of selection algorithms and the encoding/compression identifiers used by snapshots.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/decimate/errs"
)

type (
	AlgorithmType   uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	AlgorithmLTTB AlgorithmType = 0x1 // AlgorithmLTTB selects points with Largest-Triangle-Three-Buckets.
	AlgorithmNth  AlgorithmType = 0x2 // AlgorithmNth selects every n-th point.

	TypeRaw   EncodingType = 0x1 // TypeRaw stores each index as a fixed-width integer.
	TypeDelta EncodingType = 0x2 // TypeDelta stores index deltas as uvarints.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmLTTB

func (a AlgorithmType) String() string {
	switch a {
	case AlgorithmLTTB:
		return "lttb"
	case AlgorithmNth:
		return "nth"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the known algorithms.
func (a AlgorithmType) Valid() bool {
	return a == AlgorithmLTTB || a == AlgorithmNth
}

// ParseAlgorithm maps an algorithm name ("lttb" or "nth") to its AlgorithmType.
// Names are matched case-insensitively; anything else is a configuration error.
func ParseAlgorithm(name string) (AlgorithmType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lttb":
		return AlgorithmLTTB, nil
	case "nth":
		return AlgorithmNth, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownAlgorithm, name)
	}
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a compression name such as "zstd" or "none" to its CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidOption, name)
	}
}
