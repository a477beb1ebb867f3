package snapshot

import (
	"fmt"

	"github.com/arloliu/decimate/endian"
	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
)

const (
	// HeaderSize is the fixed size of the snapshot header in bytes.
	HeaderSize = 36

	// Version is the current snapshot format version.
	Version = 1

	magic = "DCSN"
)

const (
	flagBigEndian uint8 = 1 << iota
	flagBoolY
)

// Header is the decoded fixed-size snapshot header.
type Header struct {
	Version       uint8
	Flags         uint8
	IndexEncoding format.EncodingType
	Compression   format.CompressionType
	Count         uint32
	StoredLen     uint32
	RawLen        uint32
	NameID        uint64
	Checksum      uint64
}

// IsBigEndian reports whether the snapshot fields are big-endian.
func (h Header) IsBigEndian() bool { return h.Flags&flagBigEndian != 0 }

// IsBoolY reports whether the y column holds booleans.
func (h Header) IsBoolY() bool { return h.Flags&flagBoolY != 0 }

func (h Header) engine() endian.EndianEngine {
	return endian.ForFlag(h.IsBigEndian())
}

func (h Header) appendTo(dst []byte) []byte {
	engine := h.engine()

	dst = append(dst, magic...)
	dst = append(dst, h.Version, h.Flags, byte(h.IndexEncoding), byte(h.Compression))
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.StoredLen)
	dst = engine.AppendUint32(dst, h.RawLen)
	dst = engine.AppendUint64(dst, h.NameID)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader decodes and validates the header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrInvalidSnapshot, len(data), HeaderSize)
	}
	if string(data[:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidSnapshot, data[:4])
	}

	h := Header{
		Version:       data[4],
		Flags:         data[5],
		IndexEncoding: format.EncodingType(data[6]),
		Compression:   format.CompressionType(data[7]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidSnapshot, h.Version)
	}
	if h.IndexEncoding != format.TypeRaw && h.IndexEncoding != format.TypeDelta {
		return Header{}, fmt.Errorf("%w: unknown index encoding 0x%x", errs.ErrInvalidSnapshot, data[6])
	}

	engine := h.engine()
	h.Count = engine.Uint32(data[8:12])
	h.StoredLen = engine.Uint32(data[12:16])
	h.RawLen = engine.Uint32(data[16:20])
	h.NameID = engine.Uint64(data[20:28])
	h.Checksum = engine.Uint64(data[28:36])

	return h, nil
}
