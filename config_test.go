package decimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
	"github.com/arloliu/decimate/series"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(100)
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width())
	require.Equal(t, format.AlgorithmLTTB, cfg.Algorithm())

	_, ok := cfg.XRange()
	require.False(t, ok)
	require.Equal(t, "lttb(width=100)", cfg.String())
}

func TestNewConfig_Options(t *testing.T) {
	t.Run("algorithm by type", func(t *testing.T) {
		cfg, err := NewConfig(10, WithAlgorithm(format.AlgorithmNth))
		require.NoError(t, err)
		require.Equal(t, format.AlgorithmNth, cfg.Algorithm())
	})

	t.Run("algorithm by name", func(t *testing.T) {
		cfg, err := NewConfig(10, WithAlgorithmName("nth"))
		require.NoError(t, err)
		require.Equal(t, format.AlgorithmNth, cfg.Algorithm())
	})

	t.Run("x range", func(t *testing.T) {
		cfg, err := NewConfig(10, WithXRange(1, 5))
		require.NoError(t, err)
		r, ok := cfg.XRange()
		require.True(t, ok)
		require.Equal(t, series.NewRange(1, 5), r)
		require.Equal(t, "lttb(width=10, x=[1, 5))", cfg.String())
	})

	t.Run("open ranges", func(t *testing.T) {
		cfg, err := NewConfig(10, WithXRangeFrom(3))
		require.NoError(t, err)
		r, _ := cfg.XRange()
		require.True(t, math.IsInf(r.End, 1))

		cfg, err = NewConfig(10, WithXRangeUntil(3))
		require.NoError(t, err)
		r, _ = cfg.XRange()
		require.True(t, math.IsInf(r.Start, -1))
	})

	t.Run("nth accepts small widths", func(t *testing.T) {
		_, err := NewConfig(1, WithAlgorithm(format.AlgorithmNth))
		require.NoError(t, err)
	})
}

func TestNewConfig_Errors(t *testing.T) {
	tests := []struct {
		name  string
		width int
		opts  []Option
		want  error
	}{
		{"zero width", 0, nil, errs.ErrInvalidWidth},
		{"negative width", -5, nil, errs.ErrInvalidWidth},
		{"lttb width below three", 2, nil, errs.ErrInvalidWidth},
		{"unknown algorithm name", 10, []Option{WithAlgorithmName("minmax")}, errs.ErrUnknownAlgorithm},
		{"unknown algorithm type", 10, []Option{WithAlgorithm(format.AlgorithmType(9))}, errs.ErrUnknownAlgorithm},
		{"reversed range", 10, []Option{WithXRange(5, 1)}, errs.ErrInvalidRange},
		{"NaN range", 10, []Option{WithXRange(math.NaN(), 1)}, errs.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.width, tt.opts...)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrInvalidConfiguration)
			require.Equal(t, Config{}, cfg)
		})
	}
}
