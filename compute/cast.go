package compute

import (
	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// Cast converts a column to the representation type named by the target
// descriptor, using Go conversion semantics per element (integer narrowing
// wraps, float to integer truncates). The validity mask carries over
// unchanged.
//
// Both the source and target tags must be in the supported set; either
// failing resolves to a *dispatch.ErrUnsupportedType.
func Cast(c *column.Column, to types.DataType) (*column.Column, error) {
	r, err := dispatch.Dispatch[castResult](to, castTarget{src: c})
	if err != nil {
		return nil, err
	}
	return r.col, r.err
}

// castResult keeps the Functor result type uniform while the inner dispatch
// on the source tag can still fail.
type castResult struct {
	col *column.Column
	err error
}

// castTarget binds the target representation type; the source type is bound
// by a second dispatch inside castAs.
type castTarget struct {
	src *column.Column
}

func (t castTarget) Int8() castResult    { return castAs[int8](t.src) }
func (t castTarget) Int16() castResult   { return castAs[int16](t.src) }
func (t castTarget) Int32() castResult   { return castAs[int32](t.src) }
func (t castTarget) Int64() castResult   { return castAs[int64](t.src) }
func (t castTarget) Float32() castResult { return castAs[float32](t.src) }
func (t castTarget) Float64() castResult { return castAs[float64](t.src) }

func castAs[U types.Scalar](src *column.Column) castResult {
	col, err := dispatch.Dispatch[*column.Column](src.DataType(), castFrom[U]{src: src})
	return castResult{col: col, err: err}
}

type castFrom[U types.Scalar] struct {
	src *column.Column
}

func (f castFrom[U]) Int8() *column.Column    { return convert[int8, U](f.src) }
func (f castFrom[U]) Int16() *column.Column   { return convert[int16, U](f.src) }
func (f castFrom[U]) Int32() *column.Column   { return convert[int32, U](f.src) }
func (f castFrom[U]) Int64() *column.Column   { return convert[int64, U](f.src) }
func (f castFrom[U]) Float32() *column.Column { return convert[float32, U](f.src) }
func (f castFrom[U]) Float64() *column.Column { return convert[float64, U](f.src) }

func convert[T, U types.Scalar](src *column.Column) *column.Column {
	in := column.MustData[T](src)
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = U(v)
	}
	var mask *column.ValidityMask
	if m := src.Mask(); m != nil {
		mask = m.Clone()
	}
	return column.FromSliceWithMask(out, mask)
}
