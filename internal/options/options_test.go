package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width int
	name  string
	calls []string
}

var errNegativeWidth = errors.New("width cannot be negative")

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withWidth(10), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.width)
		require.Equal(t, "b", cfg.name)
		require.Equal(t, []string{"name", "width", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(5), withWidth(-1), withName("skipped"))
		require.ErrorIs(t, err, errNegativeWidth)
		require.Equal(t, 5, cfg.width)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{width: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.width)
	})
}

func TestBuild(t *testing.T) {
	requirePositive := func(c *testConfig) error {
		if c.width == 0 {
			return errors.New("width is required")
		}

		return nil
	}

	t.Run("validates after applying", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Build(cfg, requirePositive, withWidth(4)))
	})

	t.Run("validation failure", func(t *testing.T) {
		cfg := &testConfig{}
		err := Build(cfg, requirePositive, withName("only name"))
		require.EqualError(t, err, "width is required")
	})

	t.Run("option error short-circuits validation", func(t *testing.T) {
		cfg := &testConfig{}
		err := Build(cfg, func(*testConfig) error {
			t.Fatal("validate must not run")
			return nil
		}, withWidth(-2))
		require.ErrorIs(t, err, errNegativeWidth)
	})

	t.Run("nil validator", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Build(cfg, nil, withWidth(1)))
	})
}
