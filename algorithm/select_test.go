package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
)

func TestSelect(t *testing.T) {
	x := linspace(100)
	y := randomWalk(100, 5)

	t.Run("dispatches lttb", func(t *testing.T) {
		got, err := Select(format.AlgorithmLTTB, x, y, 10)
		require.NoError(t, err)
		want, err := LTTB(x, y, 10)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("dispatches nth", func(t *testing.T) {
		got, err := Select(format.AlgorithmNth, x, y, 10)
		require.NoError(t, err)
		want, err := Nth(x, y, 10)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("unknown algorithm has no fallback", func(t *testing.T) {
		idx, err := Select(format.AlgorithmType(0x7f), x, y, 10)
		require.ErrorIs(t, err, errs.ErrUnknownAlgorithm)
		require.Nil(t, idx)
	})
}

func TestMinOutput(t *testing.T) {
	require.Equal(t, 3, MinOutput(format.AlgorithmLTTB))
	require.Equal(t, 1, MinOutput(format.AlgorithmNth))
}
