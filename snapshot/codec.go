package snapshot

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/decimate/compress"
	"github.com/arloliu/decimate/endian"
	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
	"github.com/arloliu/decimate/internal/hash"
	"github.com/arloliu/decimate/internal/options"
	"github.com/arloliu/decimate/internal/pool"
)

// Encode serializes s.
//
// Parameters:
//   - s: Snapshot to encode; must pass Validate
//   - opts: Optional settings (byte order, index encoding, compression)
//
// Returns:
//   - []byte: Header followed by the stored payload, owned by the caller
//   - error: A validation, option or compression error
func Encode(s Snapshot, opts ...EncoderOption) ([]byte, error) {
	cfg := defaultEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Grow(binary.MaxVarintLen64 + len(s.Name) + s.Len()*(8+8+binary.MaxVarintLen32))
	buf.B = appendPayload(buf.B, s, cfg)
	raw := buf.Bytes()
	if uint64(len(raw)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes is too large", errs.ErrPreconditionViolation, len(raw))
	}

	stored, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	h := Header{
		Version:       Version,
		IndexEncoding: cfg.indexEncoding,
		Compression:   cfg.compression,
		Count:         uint32(s.Len()),
		StoredLen:     uint32(len(stored)),
		RawLen:        uint32(len(raw)),
		NameID:        hash.ID(s.Name),
		Checksum:      hash.Checksum(raw),
	}
	if endian.IsBigEndian(cfg.engine) {
		h.Flags |= flagBigEndian
	}
	if s.BoolY {
		h.Flags |= flagBoolY
	}

	// stored may alias the pooled buffer (no-op compression), so copy before returning it.
	out := make([]byte, 0, HeaderSize+len(stored))
	out = h.appendTo(out)
	out = append(out, stored...)

	return out, nil
}

// Decode parses a snapshot produced by Encode, verifying the header, name ID and checksum.
func Decode(data []byte) (Snapshot, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return Snapshot{}, err
	}

	body := data[HeaderSize:]
	if uint64(len(body)) != uint64(h.StoredLen) {
		return Snapshot{}, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidSnapshot, len(body), h.StoredLen)
	}

	if minLen, maxLen := rawLenBounds(h); uint64(h.RawLen) < minLen || uint64(h.RawLen) > maxLen {
		return Snapshot{}, fmt.Errorf("%w: raw length %d outside [%d, %d] for %d points",
			errs.ErrInvalidSnapshot, h.RawLen, minLen, maxLen, h.Count)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	raw, err := codec.Decompress(body, int(h.RawLen))
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}
	if uint64(len(raw)) != uint64(h.RawLen) {
		return Snapshot{}, fmt.Errorf("%w: raw payload is %d bytes, header says %d", errs.ErrInvalidSnapshot, len(raw), h.RawLen)
	}
	if sum := hash.Checksum(raw); sum != h.Checksum {
		return Snapshot{}, fmt.Errorf("%w: got 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	s, err := parsePayload(raw, h)
	if err != nil {
		return Snapshot{}, err
	}
	if id := hash.ID(s.Name); id != h.NameID {
		return Snapshot{}, fmt.Errorf("%w: name %q does not match name ID 0x%016x", errs.ErrInvalidSnapshot, s.Name, h.NameID)
	}

	return s, nil
}

// rawLenBounds returns the smallest and largest raw payload a header with h.Count points
// and h.IndexEncoding can describe.
func rawLenBounds(h Header) (uint64, uint64) {
	count := uint64(h.Count)
	minIndex, maxIndex := uint64(4), uint64(4)
	if h.IndexEncoding == format.TypeDelta {
		minIndex, maxIndex = 1, binary.MaxVarintLen32
	}

	minLen := 1 + count*(16+minIndex)
	maxLen := binary.MaxVarintLen64 + MaxNameLength + count*(16+maxIndex)

	return minLen, maxLen
}

func appendPayload(dst []byte, s Snapshot, cfg *EncoderConfig) []byte {
	engine := cfg.engine

	dst = binary.AppendUvarint(dst, uint64(len(s.Name)))
	dst = append(dst, s.Name...)
	for _, v := range s.X {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}
	for _, v := range s.Y {
		dst = engine.AppendUint64(dst, math.Float64bits(v))
	}

	switch cfg.indexEncoding {
	case format.TypeRaw:
		for _, idx := range s.Indices {
			dst = engine.AppendUint32(dst, uint32(idx))
		}
	case format.TypeDelta:
		prev := 0
		for _, idx := range s.Indices {
			dst = binary.AppendUvarint(dst, uint64(idx-prev))
			prev = idx
		}
	}

	return dst
}

// payloadReader walks a raw payload, recording the first failure.
type payloadReader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
	err    error
}

func (r *payloadReader) fail(what string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: truncated payload reading %s at offset %d", errs.ErrInvalidSnapshot, what, r.pos)
	}
}

func (r *payloadReader) uvarint(what string) uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		r.fail(what)
		return 0
	}
	r.pos += n

	return v
}

func (r *payloadReader) bytes(n uint64, what string) []byte {
	if r.err != nil {
		return nil
	}
	if n > uint64(len(r.data)-r.pos) {
		r.fail(what)
		return nil
	}
	b := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)

	return b
}

func (r *payloadReader) float64s(count int, what string) []float64 {
	b := r.bytes(uint64(count)*8, what)
	if b == nil {
		return make([]float64, 0)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(r.engine.Uint64(b[i*8:]))
	}

	return out
}

func parsePayload(raw []byte, h Header) (Snapshot, error) {
	r := &payloadReader{data: raw, engine: h.engine()}
	count := int(h.Count)

	nameLen := r.uvarint("name length")
	name := r.bytes(nameLen, "name")
	s := Snapshot{
		Name:  string(name),
		X:     r.float64s(count, "x values"),
		Y:     r.float64s(count, "y values"),
		BoolY: h.IsBoolY(),
	}
	if r.err != nil {
		return Snapshot{}, r.err
	}

	s.Indices = make([]int, count)
	switch h.IndexEncoding {
	case format.TypeRaw:
		b := r.bytes(uint64(count)*4, "indices")
		for i := 0; b != nil && i < count; i++ {
			s.Indices[i] = int(r.engine.Uint32(b[i*4:]))
		}
	case format.TypeDelta:
		prev := uint64(0)
		for i := 0; i < count && r.err == nil; i++ {
			prev += r.uvarint("index delta")
			s.Indices[i] = int(prev)
		}
	}
	if r.err != nil {
		return Snapshot{}, r.err
	}
	if r.pos != len(raw) {
		return Snapshot{}, fmt.Errorf("%w: %d trailing payload bytes", errs.ErrInvalidSnapshot, len(raw)-r.pos)
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	return s, nil
}
