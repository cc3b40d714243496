package compute

import (
	"math"

	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// Stats is a single-pass summary of the valid rows of a column. Values are
// widened to float64 regardless of the column's representation type.
//
// When Valid is zero, Min, Max and Mean are NaN and Sum is zero.
type Stats struct {
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
	Valid int
}

// Summarize computes Stats for the column in one pass over its valid rows.
func Summarize(c *column.Column) (Stats, error) {
	return dispatch.Dispatch[Stats](c.DataType(), statsFunctor{col: c})
}

// Sum returns the sum of the valid rows, widened to float64.
func Sum(c *column.Column) (float64, error) {
	s, err := Summarize(c)
	if err != nil {
		return 0, err
	}
	return s.Sum, nil
}

// Mean returns the arithmetic mean of the valid rows, or NaN when the column
// has no valid rows.
func Mean(c *column.Column) (float64, error) {
	s, err := Summarize(c)
	if err != nil {
		return 0, err
	}
	return s.Mean, nil
}

// MinMax returns the minimum and maximum of the valid rows, or NaNs when the
// column has no valid rows.
func MinMax(c *column.Column) (float64, float64, error) {
	s, err := Summarize(c)
	if err != nil {
		return 0, 0, err
	}
	return s.Min, s.Max, nil
}

func summarize[T types.Scalar](c *column.Column) Stats {
	vals := column.MustData[T](c)

	st := Stats{
		Min: math.NaN(),
		Max: math.NaN(),
	}
	acc := func(v float64) {
		if st.Valid == 0 {
			st.Min, st.Max = v, v
		} else {
			if v < st.Min {
				st.Min = v
			}
			if v > st.Max {
				st.Max = v
			}
		}
		st.Sum += v
		st.Valid++
	}

	if m := c.Mask(); m != nil {
		for i := range m.Iterator() {
			acc(float64(vals[i]))
		}
	} else {
		for _, v := range vals {
			acc(float64(v))
		}
	}

	if st.Valid == 0 {
		st.Mean = math.NaN()
	} else {
		st.Mean = st.Sum / float64(st.Valid)
	}
	return st
}

type statsFunctor struct {
	col *column.Column
}

func (f statsFunctor) Int8() Stats    { return summarize[int8](f.col) }
func (f statsFunctor) Int16() Stats   { return summarize[int16](f.col) }
func (f statsFunctor) Int32() Stats   { return summarize[int32](f.col) }
func (f statsFunctor) Int64() Stats   { return summarize[int64](f.col) }
func (f statsFunctor) Float32() Stats { return summarize[float32](f.col) }
func (f statsFunctor) Float64() Stats { return summarize[float64](f.col) }
