package types

import "fmt"

// TypeID identifies one supported scalar kind.
//
// The zero value is Empty, the sentinel meaning "no concrete type". Empty is
// never dispatchable; it exists so that missing registrations and
// uninitialized descriptors are detectable instead of silently binding to a
// type.
type TypeID uint8

const (
	// Empty is the sentinel TypeID. It maps to no representation type.
	Empty TypeID = iota
	// Int8 is an 8-bit signed integer.
	Int8
	// Int16 is a 16-bit signed integer.
	Int16
	// Int32 is a 32-bit signed integer.
	Int32
	// Int64 is a 64-bit signed integer.
	Int64
	// Float32 is an IEEE-754 binary32 floating point value.
	Float32
	// Float64 is an IEEE-754 binary64 floating point value.
	Float64

	// NumTypeIDs bounds the enumeration. It is not itself a valid TypeID.
	NumTypeIDs
)

func _() {
	// An "invalid array index" compiler error here means the TypeID set
	// changed. Update String, dispatch.Functor and the witness table together
	// with this guard.
	var x [1]struct{}
	_ = x[NumTypeIDs-7]
}

// Scalar is the closed set of representation types the TypeIDs map to.
//
// The constraint is deliberately non-approximate: named types with a scalar
// underlying type are outside the registry and resolve to Empty.
type Scalar interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

func (t TypeID) String() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Int8:
		return "INT8"
	case Int16:
		return "INT16"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Float32:
		return "FLOAT32"
	case Float64:
		return "FLOAT64"
	default:
		return fmt.Sprintf("TypeID(%d)", uint8(t))
	}
}

// Valid reports whether t names a concrete representation type.
func (t TypeID) Valid() bool {
	return t > Empty && t < NumTypeIDs
}

// IsInteger reports whether t names a signed integer type.
func (t TypeID) IsInteger() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// IsFloat reports whether t names a floating point type.
func (t TypeID) IsFloat() bool {
	return t == Float32 || t == Float64
}

// DataType is the runtime type identity of a value or column.
//
// It is created by the surrounding engine and read-only afterwards; the
// dispatch layer only ever consults ID.
type DataType struct {
	id TypeID
}

// New returns the DataType for the given TypeID.
func New(id TypeID) DataType {
	return DataType{id: id}
}

// ID returns the TypeID this descriptor carries.
func (d DataType) ID() TypeID { return d.id }

func (d DataType) String() string { return d.id.String() }
