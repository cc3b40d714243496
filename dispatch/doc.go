// Package dispatch bridges runtime type tags to statically typed code.
//
// A types.TypeID is the only runtime identity a column carries. Algorithms,
// however, are written once as generic code over types.Scalar and must be
// instantiated per concrete type at build time. This package owns the two
// directions of that bridge:
//
//   - TagOf maps a representation type, known at build time, to its TypeID.
//     WitnessOf maps a TypeID back to a runtime value standing in for the
//     representation type. A property test pins the round trip.
//   - Dispatch takes a descriptor and a Functor and invokes the one Functor
//     method bound to the representation type the descriptor's tag resolves
//     to. The selection is a linear switch over the closed tag set, not a
//     hashed lookup.
//
// A Functor carries its arguments as fields and declares one method per
// supported representation type; the type parameter R fixes one result type
// across every binding. Kernel authors write the kernel once as a generic
// function and bind each Functor method to one instantiation:
//
//	type widthOf struct{}
//
//	func width[T types.Scalar]() int { var z T; return int(unsafe.Sizeof(z)) }
//
//	func (widthOf) Int8() int    { return width[int8]() }
//	func (widthOf) Int16() int   { return width[int16]() }
//	func (widthOf) Int32() int   { return width[int32]() }
//	func (widthOf) Int64() int   { return width[int64]() }
//	func (widthOf) Float32() int { return width[float32]() }
//	func (widthOf) Float64() int { return width[float64]() }
//
//	n, err := dispatch.Dispatch[int](types.New(types.Int32), widthOf{}) // 4
//
// Because adding a TypeID extends Functor, an operation that misses a case is
// a build failure for every implementor, never a silent runtime gap.
//
// Two failure behaviors exist for tags that resolve to no representation
// type. Dispatch and DispatchWith report a *ErrUnsupportedType and never
// invoke the functor; MustDispatch and MustDispatchWith panic instead, for
// execution contexts that have no error channel to propagate through. Both
// are deterministic in the input tag and the active Mapping.
//
// Dispatch holds no state and may be called concurrently from any number of
// goroutines.
package dispatch
