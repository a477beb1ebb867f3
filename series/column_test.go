package series

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumn_Float64(t *testing.T) {
	values := []float64{1.5, 2.5, 3.5}
	c := Float64Column("y", values)

	require.Equal(t, "y", c.Name())
	require.Equal(t, KindFloat64, c.Kind())
	require.False(t, c.IsBool())
	require.Equal(t, 3, c.Len())
	require.Equal(t, values, c.Float64s())
	require.Nil(t, c.Bools())
	require.Nil(t, c.Int8s())
	require.Equal(t, 2.5, c.Float64At(1))
}

func TestColumn_Bool(t *testing.T) {
	values := []bool{false, true, false, true, true}
	c := BoolColumn("flag", values)

	require.Equal(t, KindBool, c.Kind())
	require.True(t, c.IsBool())
	require.Equal(t, 5, c.Len())
	require.Equal(t, values, c.Bools())
	require.Equal(t, []int8{0, 1, 0, 1, 1}, c.Int8s())
	require.Equal(t, []float64{0, 1, 0, 1, 1}, c.Float64s())
	require.Equal(t, 1.0, c.Float64At(1))
	require.Equal(t, 0.0, c.Float64At(2))
}

func TestColumn_Zero(t *testing.T) {
	var c Column
	require.Equal(t, KindFloat64, c.Kind())
	require.Equal(t, 0, c.Len())
	require.Equal(t, "unknown", Kind(0).String())
	require.Equal(t, "bool", KindBool.String())
}

func TestColumn_Take(t *testing.T) {
	f := Float64Column("x", []float64{10, 11, 12, 13}).take([]int{3, 0})
	require.Equal(t, []float64{13, 10}, f.Float64s())
	require.Equal(t, "x", f.Name())

	b := BoolColumn("b", []bool{true, false, true}).take([]int{1, 2})
	require.Equal(t, []bool{false, true}, b.Bools())
	require.True(t, b.IsBool())
}

func TestAppendBoolsAsFloat64(t *testing.T) {
	dst := make([]float64, 0, 4)
	dst = AppendBoolsAsFloat64(dst, []bool{true, false, true})
	require.Equal(t, []float64{1, 0, 1}, dst)
}
