package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonnieKim411/cudf/column"
)

func TestAdd(t *testing.T) {
	a := column.FromSlice([]int32{1, 2, 3})
	b := column.FromSlice([]int32{10, 20, 30})

	got, err := Add(a, b)
	require.NoError(t, err)

	vals, err := column.Data[int32](got)
	require.NoError(t, err)
	assert.Equal(t, []int32{11, 22, 33}, vals)
	assert.Nil(t, got.Mask())
}

func TestMul(t *testing.T) {
	a := column.FromSlice([]float64{1.5, 2})
	b := column.FromSlice([]float64{2, 3})

	got, err := Mul(a, b)
	require.NoError(t, err)

	vals, err := column.Data[float64](got)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, vals)
}

func TestAddIntersectsMasks(t *testing.T) {
	var ab column.Builder[int64]
	ab.Append(1)
	ab.AppendNull()
	ab.Append(3)
	a := ab.Finish()

	var bb column.Builder[int64]
	bb.Append(10)
	bb.Append(20)
	bb.AppendNull()
	b := bb.Finish()

	got, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NullCount())
	assert.True(t, got.IsValid(0))
	assert.False(t, got.IsValid(1))
	assert.False(t, got.IsValid(2))
}

func TestBinaryTypeMismatch(t *testing.T) {
	a := column.FromSlice([]int32{1})
	b := column.FromSlice([]int64{1})

	_, err := Add(a, b)
	var tm *column.ErrTypeMismatch
	assert.ErrorAs(t, err, &tm)
}

func TestBinaryLengthMismatch(t *testing.T) {
	a := column.FromSlice([]int32{1, 2})
	b := column.FromSlice([]int32{1})

	_, err := Mul(a, b)
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 2, lm.A)
	assert.Equal(t, 1, lm.B)
}

func TestGreater(t *testing.T) {
	a := column.FromSlice([]int16{5, 1, 9})
	b := column.FromSlice([]int16{3, 2, 9})

	mask, err := Greater(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, mask.CountValid())
	assert.True(t, mask.IsValid(0))
}

func TestGreaterSkipsNulls(t *testing.T) {
	var ab column.Builder[float32]
	ab.Append(5)
	ab.AppendNull()
	a := ab.Finish()

	b := column.FromSlice([]float32{1, 1})

	mask, err := Greater(a, b)
	require.NoError(t, err)
	assert.True(t, mask.IsValid(0))
	assert.False(t, mask.IsValid(1), "null rows never compare true")
}
