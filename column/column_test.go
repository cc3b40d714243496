package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonnieKim411/cudf/types"
)

func TestFromSlice(t *testing.T) {
	c := FromSlice([]int32{1, 2, 3})

	assert.Equal(t, types.Int32, c.DataType().ID())
	assert.Equal(t, 3, c.Len())
	assert.Zero(t, c.NullCount())
	assert.False(t, c.HasNulls())
	assert.Nil(t, c.Mask())

	vals, err := Data[int32](c)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3}, vals)
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1.5, 2.5}
	c := FromSlice(src)
	src[0] = 99

	vals, err := Data[float64](c)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, vals)
}

func TestDataTypeMismatch(t *testing.T) {
	c := FromSlice([]int16{7})

	_, err := Data[float32](c)
	require.Error(t, err)

	var tm *ErrTypeMismatch
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, types.Float32, tm.Want)
	assert.Equal(t, types.Int16, tm.Got)

	assert.Panics(t, func() {
		MustData[float32](c)
	})
}

func TestFromSliceWithMask(t *testing.T) {
	mask := NewValidityMask()
	mask.SetValid(0)
	mask.SetValid(2)

	c := FromSliceWithMask([]int64{10, 0, 30}, mask)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.NullCount())
	assert.True(t, c.HasNulls())
	assert.True(t, c.IsValid(0))
	assert.False(t, c.IsValid(1))
	assert.True(t, c.IsValid(2))
}

func TestBuilder(t *testing.T) {
	var b Builder[float32]
	b.Append(1.5)
	b.AppendNull()
	b.Append(3.5)
	require.Equal(t, 3, b.Len())

	c := b.Finish()
	assert.Equal(t, types.Float32, c.DataType().ID())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.NullCount())
	assert.True(t, c.IsValid(0))
	assert.False(t, c.IsValid(1))
	assert.True(t, c.IsValid(2))

	vals, err := Data[float32](c)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 0, 3.5}, vals)
}

func TestBuilderNoNulls(t *testing.T) {
	var b Builder[int8]
	b.Append(1)
	b.Append(2)

	c := b.Finish()
	assert.Nil(t, c.Mask(), "all-valid builder output carries no mask")
	assert.Zero(t, c.NullCount())
}
