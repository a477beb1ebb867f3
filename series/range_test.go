package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/decimate/errs"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(1, 3)

	require.True(t, r.Contains(1))
	require.True(t, r.Contains(2.999))
	require.False(t, r.Contains(3), "end is exclusive")
	require.False(t, r.Contains(0.999))
	require.False(t, r.Contains(math.NaN()))
}

func TestRange_OpenEnds(t *testing.T) {
	t.Run("from", func(t *testing.T) {
		r := From(10)
		require.True(t, r.Contains(10))
		require.True(t, r.Contains(math.MaxFloat64))
		require.True(t, r.Contains(math.Inf(1)))
		require.False(t, r.Contains(9))
	})

	t.Run("until", func(t *testing.T) {
		r := Until(10)
		require.True(t, r.Contains(math.Inf(-1)))
		require.True(t, r.Contains(-1e300))
		require.False(t, r.Contains(10))
	})

	t.Run("all", func(t *testing.T) {
		require.True(t, All().Unbounded())
		require.False(t, From(0).Unbounded())
		require.True(t, All().Contains(0))
	})
}

func TestRange_Validate(t *testing.T) {
	require.NoError(t, NewRange(1, 1).Validate())
	require.NoError(t, From(5).Validate())
	require.NoError(t, Until(5).Validate())

	err := NewRange(3, 1).Validate()
	require.ErrorIs(t, err, errs.ErrInvalidRange)
	require.ErrorIs(t, err, errs.ErrInvalidConfiguration)

	require.ErrorIs(t, NewRange(math.NaN(), 1).Validate(), errs.ErrInvalidRange)
	require.ErrorIs(t, NewRange(0, math.NaN()).Validate(), errs.ErrInvalidRange)
}

func TestRange_String(t *testing.T) {
	require.Equal(t, "[1, 2.5)", NewRange(1, 2.5).String())
	require.Equal(t, "[0, +Inf)", From(0).String())
}
