// Package types defines the runtime type identities of the columnar core.
//
// A TypeID names one supported scalar kind from a fixed, closed set. A
// DataType is the descriptor attached to a value or column, carrying the
// TypeID the dispatch layer resolves against. The Scalar constraint names
// the concrete representation types the TypeIDs map to.
//
// The set of TypeIDs is fixed at build time and never extended at runtime.
package types
