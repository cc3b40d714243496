package compute

import (
	"fmt"

	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// ErrLengthMismatch indicates an element-wise operation over columns of
// different lengths.
type ErrLengthMismatch struct {
	A, B int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("column length mismatch: %d vs %d", e.A, e.B)
}

// Fill returns a column of n copies of value, every row valid.
func Fill[T types.Scalar](value T, n int) *column.Column {
	vals := make([]T, n)
	for i := range vals {
		vals[i] = value
	}
	return column.FromSlice(vals)
}

// Add returns the element-wise sum of two columns of the same type and
// length. A result row is valid only where both input rows are valid.
func Add(a, b *column.Column) (*column.Column, error) {
	if err := checkBinary(a, b); err != nil {
		return nil, err
	}
	return dispatch.Dispatch[*column.Column](a.DataType(), addFunctor{a: a, b: b})
}

// Mul returns the element-wise product of two columns of the same type and
// length. A result row is valid only where both input rows are valid.
func Mul(a, b *column.Column) (*column.Column, error) {
	if err := checkBinary(a, b); err != nil {
		return nil, err
	}
	return dispatch.Dispatch[*column.Column](a.DataType(), mulFunctor{a: a, b: b})
}

// Greater returns the mask of rows where a exceeds b, restricted to rows
// valid in both inputs.
func Greater(a, b *column.Column) (*column.ValidityMask, error) {
	if err := checkBinary(a, b); err != nil {
		return nil, err
	}
	return dispatch.Dispatch[*column.ValidityMask](a.DataType(), greaterFunctor{a: a, b: b})
}

func checkBinary(a, b *column.Column) error {
	if a.DataType().ID() != b.DataType().ID() {
		return &column.ErrTypeMismatch{Want: a.DataType().ID(), Got: b.DataType().ID()}
	}
	if a.Len() != b.Len() {
		return &ErrLengthMismatch{A: a.Len(), B: b.Len()}
	}
	return nil
}

func addCols[T types.Scalar](a, b *column.Column) *column.Column {
	av := column.MustData[T](a)
	bv := column.MustData[T](b)
	out := make([]T, len(av))
	for i := range av {
		out[i] = av[i] + bv[i]
	}
	return column.FromSliceWithMask(out, combineMasks(a, b))
}

func mulCols[T types.Scalar](a, b *column.Column) *column.Column {
	av := column.MustData[T](a)
	bv := column.MustData[T](b)
	out := make([]T, len(av))
	for i := range av {
		out[i] = av[i] * bv[i]
	}
	return column.FromSliceWithMask(out, combineMasks(a, b))
}

func greaterCols[T types.Scalar](a, b *column.Column) *column.ValidityMask {
	av := column.MustData[T](a)
	bv := column.MustData[T](b)
	out := column.NewValidityMask()
	for i := range av {
		if a.IsValid(i) && b.IsValid(i) && av[i] > bv[i] {
			out.SetValid(i)
		}
	}
	return out
}

// combineMasks intersects the input validity masks; nil means all valid.
func combineMasks(a, b *column.Column) *column.ValidityMask {
	switch {
	case a.Mask() == nil && b.Mask() == nil:
		return nil
	case a.Mask() == nil:
		return b.Mask().Clone()
	case b.Mask() == nil:
		return a.Mask().Clone()
	default:
		m := a.Mask().Clone()
		m.And(b.Mask())
		return m
	}
}

type addFunctor struct{ a, b *column.Column }

func (f addFunctor) Int8() *column.Column    { return addCols[int8](f.a, f.b) }
func (f addFunctor) Int16() *column.Column   { return addCols[int16](f.a, f.b) }
func (f addFunctor) Int32() *column.Column   { return addCols[int32](f.a, f.b) }
func (f addFunctor) Int64() *column.Column   { return addCols[int64](f.a, f.b) }
func (f addFunctor) Float32() *column.Column { return addCols[float32](f.a, f.b) }
func (f addFunctor) Float64() *column.Column { return addCols[float64](f.a, f.b) }

type mulFunctor struct{ a, b *column.Column }

func (f mulFunctor) Int8() *column.Column    { return mulCols[int8](f.a, f.b) }
func (f mulFunctor) Int16() *column.Column   { return mulCols[int16](f.a, f.b) }
func (f mulFunctor) Int32() *column.Column   { return mulCols[int32](f.a, f.b) }
func (f mulFunctor) Int64() *column.Column   { return mulCols[int64](f.a, f.b) }
func (f mulFunctor) Float32() *column.Column { return mulCols[float32](f.a, f.b) }
func (f mulFunctor) Float64() *column.Column { return mulCols[float64](f.a, f.b) }

type greaterFunctor struct{ a, b *column.Column }

func (f greaterFunctor) Int8() *column.ValidityMask    { return greaterCols[int8](f.a, f.b) }
func (f greaterFunctor) Int16() *column.ValidityMask   { return greaterCols[int16](f.a, f.b) }
func (f greaterFunctor) Int32() *column.ValidityMask   { return greaterCols[int32](f.a, f.b) }
func (f greaterFunctor) Int64() *column.ValidityMask   { return greaterCols[int64](f.a, f.b) }
func (f greaterFunctor) Float32() *column.ValidityMask { return greaterCols[float32](f.a, f.b) }
func (f greaterFunctor) Float64() *column.ValidityMask { return greaterCols[float64](f.a, f.b) }
