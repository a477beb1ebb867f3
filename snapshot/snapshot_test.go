package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/series"
)

func TestFromTable(t *testing.T) {
	frame, err := series.NewFrame(
		series.Float64Column("x", []float64{10, 20, 30, 40}),
		series.BoolColumn("open", []bool{true, false, false, true}),
	)
	require.NoError(t, err)

	t.Run("selected rows", func(t *testing.T) {
		s, err := FromTable("door", frame, []int{0, 3})
		require.NoError(t, err)
		require.Equal(t, []float64{10, 40}, s.X)
		require.Equal(t, []float64{1, 1}, s.Y)
		require.True(t, s.BoolY)
		require.Equal(t, []int{0, 3}, s.Indices)
	})

	t.Run("nil indices capture every row", func(t *testing.T) {
		s, err := FromTable("door", frame, nil)
		require.NoError(t, err)
		require.Equal(t, 4, s.Len())
		require.Equal(t, []int{0, 1, 2, 3}, s.Indices)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := FromTable("door", frame, []int{0, 4})
		require.ErrorIs(t, err, errs.ErrRowOutOfRange)
	})

	t.Run("unordered", func(t *testing.T) {
		_, err := FromTable("door", frame, []int{2, 1})
		require.ErrorIs(t, err, errs.ErrPreconditionViolation)
	})

	t.Run("needs two dimensions", func(t *testing.T) {
		single, err := series.NewFrame(series.Float64Column("x", []float64{1}))
		require.NoError(t, err)
		_, err = FromTable("x", single, nil)
		require.ErrorIs(t, err, errs.ErrPreconditionViolation)
	})

	t.Run("nil table", func(t *testing.T) {
		_, err := FromTable("x", nil, nil)
		require.ErrorIs(t, err, errs.ErrPreconditionViolation)
	})
}

func TestSnapshot_Table(t *testing.T) {
	t.Run("float", func(t *testing.T) {
		s := Snapshot{Name: "temp", X: []float64{1, 2}, Y: []float64{20.5, 21}, Indices: []int{0, 7}}
		frame, err := s.Table()
		require.NoError(t, err)

		y, err := frame.Dimension(1)
		require.NoError(t, err)
		require.Equal(t, "temp", y.Name())
		require.Equal(t, []float64{20.5, 21}, y.Float64s())
	})

	t.Run("bool", func(t *testing.T) {
		s := Snapshot{X: []float64{1, 2}, Y: []float64{0, 1}, BoolY: true, Indices: []int{0, 1}}
		frame, err := s.Table()
		require.NoError(t, err)

		y, err := frame.Dimension(1)
		require.NoError(t, err)
		require.Equal(t, "y", y.Name())
		require.Equal(t, []bool{false, true}, y.Bools())
	})
}
