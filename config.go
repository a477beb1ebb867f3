package decimate

import (
	"fmt"

	"github.com/arloliu/decimate/algorithm"
	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
	"github.com/arloliu/decimate/internal/options"
	"github.com/arloliu/decimate/series"
)

// Config holds the parameters of a downsampling operation.
//
// A Config is immutable once built by NewConfig; copy it freely.
type Config struct {
	width     int
	algorithm format.AlgorithmType
	xRange    series.Range
	hasRange  bool
}

// Option is a functional option for NewConfig.
type Option = options.Option[*Config]

// NewConfig builds a validated configuration for the given target width.
//
// Parameters:
//   - width: Target number of output points, must be positive (at least 3 for LTTB)
//   - opts: Optional settings, see WithAlgorithm, WithAlgorithmName and WithXRange
//
// Returns:
//   - Config: The configuration
//   - error: An error wrapping errs.ErrInvalidConfiguration if any setting is invalid
//
// Example:
//
//	cfg, err := decimate.NewConfig(800,
//	    decimate.WithAlgorithm(format.AlgorithmNth),
//	    decimate.WithXRangeFrom(1.7e9),
//	)
func NewConfig(width int, opts ...Option) (Config, error) {
	cfg := &Config{
		width:     width,
		algorithm: format.DefaultAlgorithm,
	}

	if err := options.Build(cfg, (*Config).validate, opts...); err != nil {
		return Config{}, err
	}

	return *cfg, nil
}

// WithAlgorithm selects the downsampling algorithm.
func WithAlgorithm(alg format.AlgorithmType) Option {
	return options.New(func(cfg *Config) error {
		if !alg.Valid() {
			return fmt.Errorf("%w: 0x%x", errs.ErrUnknownAlgorithm, uint8(alg))
		}
		cfg.algorithm = alg

		return nil
	})
}

// WithAlgorithmName selects the downsampling algorithm by name ("lttb" or "nth").
func WithAlgorithmName(name string) Option {
	return options.New(func(cfg *Config) error {
		alg, err := format.ParseAlgorithm(name)
		if err != nil {
			return err
		}
		cfg.algorithm = alg

		return nil
	})
}

// WithXRange restricts the input to rows with start <= x < end before downsampling.
func WithXRange(start, end float64) Option {
	return WithRange(series.NewRange(start, end))
}

// WithXRangeFrom restricts the input to rows with x >= start.
func WithXRangeFrom(start float64) Option {
	return WithRange(series.From(start))
}

// WithXRangeUntil restricts the input to rows with x < end.
func WithXRangeUntil(end float64) Option {
	return WithRange(series.Until(end))
}

// WithRange restricts the input to rows whose x lies in r.
func WithRange(r series.Range) Option {
	return options.New(func(cfg *Config) error {
		if err := r.Validate(); err != nil {
			return err
		}
		cfg.xRange = r
		cfg.hasRange = true

		return nil
	})
}

// Width returns the target number of output points.
func (c Config) Width() int { return c.width }

// Algorithm returns the selected algorithm.
func (c Config) Algorithm() format.AlgorithmType { return c.algorithm }

// XRange returns the x-range filter and whether one is set.
func (c Config) XRange() (series.Range, bool) { return c.xRange, c.hasRange }

func (c Config) String() string {
	if c.hasRange {
		return fmt.Sprintf("%s(width=%d, x=%s)", c.algorithm, c.width, c.xRange)
	}

	return fmt.Sprintf("%s(width=%d)", c.algorithm, c.width)
}

func (c *Config) validate() error {
	if !c.algorithm.Valid() {
		return fmt.Errorf("%w: 0x%x", errs.ErrUnknownAlgorithm, uint8(c.algorithm))
	}
	if c.width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", errs.ErrInvalidWidth, c.width)
	}
	if minOut := algorithm.MinOutput(c.algorithm); c.width < minOut {
		return fmt.Errorf("%w: %s needs width >= %d, got %d", errs.ErrInvalidWidth, c.algorithm, minOut, c.width)
	}
	if c.hasRange {
		return c.xRange.Validate()
	}

	return nil
}
