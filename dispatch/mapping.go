package dispatch

import (
	"unsafe"

	"github.com/DonnieKim411/cudf/types"
)

// TagOf maps a representation type known at build time to its TypeID.
//
// Types outside the registry, including named types whose underlying type is
// a registered scalar, resolve to types.Empty. That makes a missing
// registration detectable at the call site instead of binding silently.
func TagOf[T any]() types.TypeID {
	var zero T
	switch any(zero).(type) {
	case int8:
		return types.Int8
	case int16:
		return types.Int16
	case int32:
		return types.Int32
	case int64:
		return types.Int64
	case float32:
		return types.Float32
	case float64:
		return types.Float64
	default:
		return types.Empty
	}
}

// Witness carries the identity of one representation type as a runtime value.
// It is the tag-to-type direction of the registry: given a TypeID, WitnessOf
// yields the Witness of the type that tag resolves to.
type Witness interface {
	// ID returns the TypeID of the witnessed representation type.
	ID() types.TypeID
	// Size returns the byte width of the witnessed representation type.
	Size() int

	String() string
}

type typeWitness[T types.Scalar] struct{}

// ID derives the tag through TagOf, so the round trip
// WitnessOf(t).ID() == t holds by construction for every mapped tag.
func (typeWitness[T]) ID() types.TypeID {
	return TagOf[T]()
}

func (typeWitness[T]) Size() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (w typeWitness[T]) String() string {
	return w.ID().String()
}

// witnesses is the static tag-to-type table. Empty deliberately has no entry:
// the sentinel maps to no representation type.
var witnesses = [types.NumTypeIDs]Witness{
	types.Int8:    typeWitness[int8]{},
	types.Int16:   typeWitness[int16]{},
	types.Int32:   typeWitness[int32]{},
	types.Int64:   typeWitness[int64]{},
	types.Float32: typeWitness[float32]{},
	types.Float64: typeWitness[float64]{},
}

// WitnessOf returns the Witness of the representation type id resolves to
// under the default mapping, or nil when id is the sentinel or outside the
// enumerated set. A nil Witness must never be operated on.
func WitnessOf(id types.TypeID) Witness {
	if id >= types.NumTypeIDs {
		return nil
	}
	return witnesses[id]
}

// Mapping resolves which representation type a dispatch binds for a given
// tag. Because the type set is closed, the representation is named by its own
// tag: Resolve returns the TypeID whose representation type the functor is
// instantiated with.
//
// The default mapping is the identity. Callers may substitute any alternate
// mapping at the dispatch site, for example to force every tag onto one fixed
// instantiation, without touching the default registry.
type Mapping interface {
	Resolve(id types.TypeID) types.TypeID
}

type identityMapping struct{}

func (identityMapping) Resolve(id types.TypeID) types.TypeID { return id }

// DefaultMapping resolves every tag to its registered representation type.
var DefaultMapping Mapping = identityMapping{}

// FixedMapping resolves every tag to the one representation type named by the
// mapping value itself. Dispatching under FixedMapping(types.Int32) invokes
// the Int32 binding regardless of the input tag.
type FixedMapping types.TypeID

// Resolve implements Mapping.
func (m FixedMapping) Resolve(types.TypeID) types.TypeID {
	return types.TypeID(m)
}
