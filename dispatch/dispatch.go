package dispatch

import (
	"github.com/DonnieKim411/cudf/types"
)

// Functor is a unit of generic work invocable once per representation type.
//
// Each method binds the operation to one concrete type; the type parameter R
// fixes one result type across every binding, so instantiations cannot
// disagree on what a dispatch returns. Arguments travel as fields of the
// implementing value.
//
// Adding a TypeID extends this interface, which breaks every implementor at
// build time until the new binding exists.
type Functor[R any] interface {
	Int8() R
	Int16() R
	Int32() R
	Int64() R
	Float32() R
	Float64() R
}

// Dispatch invokes the binding of f selected by the descriptor's tag under
// the default mapping.
//
// The functor is invoked exactly once on success and never on failure. A tag
// that resolves to no representation type yields the zero R and a
// *ErrUnsupportedType. Dispatch holds no state and is safe for concurrent
// use.
func Dispatch[R any](dt types.DataType, f Functor[R]) (R, error) {
	return DispatchWith[R](DefaultMapping, dt, f)
}

// DispatchWith is Dispatch under a caller-supplied Mapping. A nil Mapping
// falls back to DefaultMapping.
//
// The case analysis is a linear branch over the closed tag set. Each case
// resolves the representation type through m and binds f to it, so a custom
// mapping redirects which instantiation runs without widening the set of
// accepted input tags: the sentinel fails before the mapping is consulted.
func DispatchWith[R any](m Mapping, dt types.DataType, f Functor[R]) (R, error) {
	if m == nil {
		m = DefaultMapping
	}
	switch dt.ID() {
	case types.Int8:
		return bind(m.Resolve(types.Int8), f)
	case types.Int16:
		return bind(m.Resolve(types.Int16), f)
	case types.Int32:
		return bind(m.Resolve(types.Int32), f)
	case types.Int64:
		return bind(m.Resolve(types.Int64), f)
	case types.Float32:
		return bind(m.Resolve(types.Float32), f)
	case types.Float64:
		return bind(m.Resolve(types.Float64), f)
	default:
		var zero R
		return zero, &ErrUnsupportedType{ID: dt.ID()}
	}
}

// MustDispatch is Dispatch for execution contexts with no error channel: an
// unresolvable tag panics with the *ErrUnsupportedType instead of returning
// it. The failing call produces no value.
func MustDispatch[R any](dt types.DataType, f Functor[R]) R {
	return MustDispatchWith[R](DefaultMapping, dt, f)
}

// MustDispatchWith is DispatchWith with the panic failure behavior of
// MustDispatch.
func MustDispatchWith[R any](m Mapping, dt types.DataType, f Functor[R]) R {
	r, err := DispatchWith[R](m, dt, f)
	if err != nil {
		panic(err)
	}
	return r
}

// bind invokes the f binding for the representation type named by id.
func bind[R any](id types.TypeID, f Functor[R]) (R, error) {
	switch id {
	case types.Int8:
		return f.Int8(), nil
	case types.Int16:
		return f.Int16(), nil
	case types.Int32:
		return f.Int32(), nil
	case types.Int64:
		return f.Int64(), nil
	case types.Float32:
		return f.Float32(), nil
	case types.Float64:
		return f.Float64(), nil
	default:
		var zero R
		return zero, &ErrUnsupportedType{ID: id}
	}
}
