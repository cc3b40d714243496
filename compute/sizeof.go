package compute

import (
	"unsafe"

	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// SizeOf returns the byte width of the representation type the descriptor's
// tag resolves to: 1, 2, 4 or 8 for the integer tags, 4 or 8 for the floating
// point tags.
func SizeOf(dt types.DataType) (int, error) {
	return dispatch.Dispatch[int](dt, widthFunctor{})
}

func width[T types.Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

type widthFunctor struct{}

func (widthFunctor) Int8() int    { return width[int8]() }
func (widthFunctor) Int16() int   { return width[int16]() }
func (widthFunctor) Int32() int   { return width[int32]() }
func (widthFunctor) Int64() int   { return width[int64]() }
func (widthFunctor) Float32() int { return width[float32]() }
func (widthFunctor) Float64() int { return width[float64]() }
