package decimate

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/series"
)

// FileConfig is the YAML representation of a Config.
//
//	algorithm: lttb
//	width: 1000
//	x_range:
//	  start: 0
//	  end: 3600
type FileConfig struct {
	Algorithm string     `yaml:"algorithm"`
	Width     *int       `yaml:"width"`
	XRange    *FileRange `yaml:"x_range"`
}

// WidthOrZero returns the configured width, or 0 when the key is absent.
func (fc FileConfig) WidthOrZero() int {
	if fc.Width == nil {
		return 0
	}

	return *fc.Width
}

// FileRange is the YAML representation of an x-range. A missing bound is open.
type FileRange struct {
	Start *float64 `yaml:"start"`
	End   *float64 `yaml:"end"`
}

// Range converts fr into a series.Range.
func (fr FileRange) Range() series.Range {
	r := series.All()
	if fr.Start != nil {
		r.Start = *fr.Start
	}
	if fr.End != nil {
		r.End = *fr.End
	}

	return r
}

// Options returns the options equivalent to fc, excluding the width.
func (fc FileConfig) Options() []Option {
	var opts []Option
	if fc.Algorithm != "" {
		opts = append(opts, WithAlgorithmName(fc.Algorithm))
	}
	if fc.XRange != nil {
		if r := fc.XRange.Range(); !r.Unbounded() {
			opts = append(opts, WithRange(r))
		}
	}

	return opts
}

// Config validates fc and builds a Config, with extra options applied last.
func (fc FileConfig) Config(extra ...Option) (Config, error) {
	return NewConfig(fc.WidthOrZero(), append(fc.Options(), extra...)...)
}

// ParseFileConfig decodes a YAML document into a FileConfig without validating it.
// Unknown keys are rejected.
func ParseFileConfig(r io.Reader) (FileConfig, error) {
	var fc FileConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return fc, nil
		}

		return fc, fmt.Errorf("%w: decode yaml: %w", errs.ErrInvalidConfiguration, err)
	}

	if fc.XRange != nil {
		if (fc.XRange.Start != nil && math.IsNaN(*fc.XRange.Start)) ||
			(fc.XRange.End != nil && math.IsNaN(*fc.XRange.End)) {
			return fc, fmt.Errorf("%w: NaN bound", errs.ErrInvalidRange)
		}
	}

	return fc, nil
}

// LoadConfig reads and validates a YAML configuration.
func LoadConfig(r io.Reader) (Config, error) {
	fc, err := ParseFileConfig(r)
	if err != nil {
		return Config{}, err
	}

	return fc.Config()
}

// LoadConfigFile reads and validates a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}
