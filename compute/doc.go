// Package compute provides kernels over columns, bound per type through the
// dispatch layer.
//
// Every kernel is written once as a generic function over types.Scalar and
// reached through dispatch.Dispatch on the column's descriptor, so the same
// code path serves all supported representation types. Kernels are pure and
// mask-aware: null rows never contribute to a result, and element-wise
// operations intersect the input validity masks.
package compute
