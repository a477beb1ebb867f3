package snapshot

import (
	"fmt"

	"github.com/arloliu/decimate/endian"
	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
	"github.com/arloliu/decimate/internal/options"
)

// EncoderConfig holds snapshot encoding parameters.
type EncoderConfig struct {
	engine        endian.EndianEngine
	indexEncoding format.EncodingType
	compression   format.CompressionType
}

// EncoderOption is a functional option for Encode.
type EncoderOption = options.Option[*EncoderConfig]

func defaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		engine:        endian.GetLittleEndianEngine(),
		indexEncoding: format.TypeDelta,
		compression:   format.CompressionNone,
	}
}

// WithLittleEndian writes multi-byte fields in little-endian order (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes multi-byte fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithIndexEncoding selects how source row indices are stored.
func WithIndexEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if enc != format.TypeRaw && enc != format.TypeDelta {
			return fmt.Errorf("%w: index encoding %s", errs.ErrInvalidOption, enc)
		}
		cfg.indexEncoding = enc

		return nil
	})
}

// WithCompression selects the payload compression.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidOption, comp)
		}
	})
}
