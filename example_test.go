package cudf_test

import (
	"context"
	"fmt"

	cudf "github.com/DonnieKim411/cudf"
	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/compute"
	"github.com/DonnieKim411/cudf/types"
)

func Example() {
	tbl := cudf.NewTable()
	_ = tbl.AddColumn("price", column.FromSlice([]float64{9.5, 12.0, 7.25}))
	_ = tbl.AddColumn("qty", column.FromSlice([]int32{3, 1, 4}))

	summaries, _ := tbl.Describe(context.Background())
	for _, s := range summaries {
		fmt.Printf("%s %s min=%g max=%g\n", s.Name, s.Type, s.Stats.Min, s.Stats.Max)
	}
	// Output:
	// price FLOAT64 min=7.25 max=12
	// qty INT32 min=1 max=4
}

func Example_dispatch() {
	// The byte width of a column's representation type, resolved from its
	// runtime tag alone.
	width, _ := compute.SizeOf(types.New(types.Int32))
	fmt.Println(width)
	// Output:
	// 4
}
