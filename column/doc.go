// Package column provides immutable typed columns with validity masks.
//
// A Column is one contiguous buffer of a single representation type plus the
// types.DataType descriptor the dispatch layer resolves against, plus an
// optional ValidityMask marking which rows hold a value. Columns are sealed
// at construction; use a Builder to assemble one incrementally.
//
// The typed buffer is only reachable through Data[T], which checks the
// requested T against the descriptor, or MustData[T] for call sites where the
// binding was already established by a dispatch.
package column
