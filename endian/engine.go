// Package endian selects the byte order used for snapshot fields.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so encoders can
// append directly into a buffer without a scratch slice:
//
//	buf = engine.AppendUint64(buf, math.Float64bits(v))
//
// Engines are the stateless binary.LittleEndian and binary.BigEndian values and are safe
// for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes big-endian.
func IsBigEndian(engine EndianEngine) bool {
	return engine == binary.BigEndian
}

// ForFlag returns the big-endian engine when bigEndian is set, else little-endian.
func ForFlag(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
