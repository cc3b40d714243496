package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

func TestSizeOf(t *testing.T) {
	tests := []struct {
		id       types.TypeID
		expected int
	}{
		{types.Int8, 1},
		{types.Int16, 2},
		{types.Int32, 4},
		{types.Int64, 8},
		{types.Float32, 4},
		{types.Float64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			got, err := SizeOf(types.New(tt.id))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := SizeOf(types.New(types.Empty))
	assert.ErrorIs(t, err, dispatch.ErrUnsupported)
}

func TestSummarize(t *testing.T) {
	c := column.FromSlice([]int32{4, -2, 10})

	st, err := Summarize(c)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Valid)
	assert.Equal(t, float64(-2), st.Min)
	assert.Equal(t, float64(10), st.Max)
	assert.Equal(t, float64(12), st.Sum)
	assert.InDelta(t, 4.0, st.Mean, 1e-12)
}

func TestSummarizeSkipsNulls(t *testing.T) {
	var b column.Builder[float64]
	b.Append(1)
	b.AppendNull()
	b.Append(5)
	c := b.Finish()

	st, err := Summarize(c)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Valid)
	assert.Equal(t, float64(1), st.Min)
	assert.Equal(t, float64(5), st.Max)
	assert.Equal(t, float64(6), st.Sum)
	assert.InDelta(t, 3.0, st.Mean, 1e-12)
}

func TestSummarizeAllNull(t *testing.T) {
	var b column.Builder[int16]
	b.AppendNull()
	b.AppendNull()
	c := b.Finish()

	st, err := Summarize(c)
	require.NoError(t, err)
	assert.Zero(t, st.Valid)
	assert.Zero(t, st.Sum)
	assert.True(t, math.IsNaN(st.Min))
	assert.True(t, math.IsNaN(st.Max))
	assert.True(t, math.IsNaN(st.Mean))
}

func TestReductionWrappers(t *testing.T) {
	c := column.FromSlice([]int8{3, 1, 2})

	sum, err := Sum(c)
	require.NoError(t, err)
	assert.Equal(t, float64(6), sum)

	mean, err := Mean(c)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mean, 1e-12)

	min, max, err := MinMax(c)
	require.NoError(t, err)
	assert.Equal(t, float64(1), min)
	assert.Equal(t, float64(3), max)
}

func TestFill(t *testing.T) {
	c := Fill[int64](7, 4)

	assert.Equal(t, types.Int64, c.DataType().ID())
	assert.Equal(t, 4, c.Len())

	vals, err := column.Data[int64](c)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 7, 7, 7}, vals)
}
