// Package codec serializes columns into self-describing binary chunks.
//
// A chunk records the column's TypeID, row count and compression scheme in a
// fixed header, followed by the value block and the serialized validity mask
// when the column has nulls. Decoding resolves the stored TypeID through the
// dispatch layer to rebuild the typed buffer, so a chunk round-trips any
// supported column without the caller naming its type.
//
// Value blocks can be stored raw, LZ4 block compressed, or ZSTD compressed.
// Incompressible data falls back to raw storage inside the block.
package codec
