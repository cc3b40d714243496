// Package cudf provides an embedded columnar data core for Go.
//
// The heart of the library is a static type dispatch mechanism: a column's
// type identity is a thin runtime tag (types.TypeID), and algorithms are
// written once as generic code and bound to the tag's concrete representation
// type through dispatch.Dispatch. There is no boxing and no reflection on the
// hot path.
//
// # Quick Start
//
//	tbl := cudf.NewTable()
//	_ = tbl.AddColumn("price", column.FromSlice([]float64{9.5, 12.0, 7.25}))
//	_ = tbl.AddColumn("qty", column.FromSlice([]int32{3, 1, 4}))
//
//	summaries, _ := tbl.Describe(context.Background())
//	for _, s := range summaries {
//	    fmt.Println(s.Name, s.Type, s.Stats.Mean)
//	}
//
// # Layout
//
//   - types: the closed TypeID enumeration and DataType descriptors
//   - dispatch: tag-to-type registry and the dispatcher itself
//   - column: immutable typed columns with Roaring validity masks
//   - compute: dispatched kernels (reductions, casts, element-wise ops)
//   - codec: self-describing compressed column chunks (LZ4/ZSTD)
//
// The root package ties these together into a Table with parallel per-column
// execution.
package cudf
