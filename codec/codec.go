package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/DonnieKim411/cudf/column"
	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// Chunk header layout, little endian:
//
//	[0:4]   magic "CCHK"
//	[4]     format version
//	[5]     TypeID
//	[6]     CompressionType
//	[7]     reserved (zero)
//	[8:12]  row count
//	[12:16] serialized mask length (0 = no nulls)
//
// The value block follows the header, then the mask bytes.
const (
	headerSize    = 16
	formatVersion = 1
)

var chunkMagic = [4]byte{'C', 'C', 'H', 'K'}

var (
	// ErrChunkTooSmall indicates a chunk shorter than its own header claims.
	ErrChunkTooSmall = errors.New("chunk too small")
	// ErrBadMagic indicates data that is not a column chunk.
	ErrBadMagic = errors.New("bad chunk magic")
	// ErrUnknownVersion indicates a chunk written by an unknown format
	// version.
	ErrUnknownVersion = errors.New("unknown chunk format version")
	// ErrMaskOutOfRange indicates a validity mask marking a row beyond the
	// chunk's row count.
	ErrMaskOutOfRange = errors.New("mask row out of range")
)

// checkChunkRows rejects lengths that do not fit the header's 32-bit row
// count field.
func checkChunkRows(n uint64) error {
	if n > math.MaxUint32 {
		return fmt.Errorf("column length %d exceeds chunk row limit", n)
	}
	return nil
}

// Encode serializes a column into a chunk with the given compression.
func Encode(c *column.Column, ct CompressionType) ([]byte, error) {
	if err := checkChunkRows(uint64(c.Len())); err != nil {
		return nil, err
	}
	raw, err := dispatch.Dispatch[[]byte](c.DataType(), encodeFunctor{col: c})
	if err != nil {
		return nil, err
	}

	block, err := compressBlock(raw, ct)
	if err != nil {
		return nil, err
	}

	var maskBytes []byte
	if c.HasNulls() {
		maskBytes, err = c.Mask().MarshalBinary()
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, headerSize, headerSize+len(block)+len(maskBytes))
	copy(out[0:4], chunkMagic[:])
	out[4] = formatVersion
	out[5] = byte(c.DataType().ID())
	out[6] = byte(ct)
	binary.LittleEndian.PutUint32(out[8:12], uint32(c.Len()))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(maskBytes)))
	out = append(out, block...)
	out = append(out, maskBytes...)
	return out, nil
}

// Decode rebuilds a column from a chunk produced by Encode. The typed buffer
// is reconstructed by dispatching on the TypeID stored in the header.
func Decode(data []byte) (*column.Column, error) {
	if len(data) < headerSize {
		return nil, ErrChunkTooSmall
	}
	if [4]byte(data[0:4]) != chunkMagic {
		return nil, ErrBadMagic
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, data[4])
	}

	id := types.TypeID(data[5])
	ct := CompressionType(data[6])
	if ct > CompressionZSTD {
		return nil, fmt.Errorf("unknown compression type: %d", ct)
	}
	rows := int(binary.LittleEndian.Uint32(data[8:12]))
	maskLen := int(binary.LittleEndian.Uint32(data[12:16]))

	if len(data) < headerSize+maskLen {
		return nil, ErrChunkTooSmall
	}
	blockEnd := len(data) - maskLen

	raw, err := decompressBlock(data[headerSize:blockEnd], ct)
	if err != nil {
		return nil, err
	}

	var mask *column.ValidityMask
	if maskLen > 0 {
		mask, err = column.UnmarshalValidityMask(data[blockEnd:])
		if err != nil {
			return nil, err
		}
		if max, ok := mask.Max(); ok && max >= rows {
			return nil, fmt.Errorf("%w: row %d in a chunk of %d rows", ErrMaskOutOfRange, max, rows)
		}
	}

	r, err := dispatch.Dispatch[decodeResult](types.New(id), decodeFunctor{
		raw:  raw,
		rows: rows,
		mask: mask,
	})
	if err != nil {
		return nil, err
	}
	return r.col, r.err
}

func scalarWidth[T types.Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func appendScalar[T types.Scalar](buf []byte, v T) []byte {
	switch v := any(v).(type) {
	case int8:
		return append(buf, byte(v))
	case int16:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case int32:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	case int64:
		return binary.LittleEndian.AppendUint64(buf, uint64(v))
	case float32:
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	case float64:
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	default:
		panic(fmt.Sprintf("unreachable scalar type %T", v))
	}
}

func readScalar[T types.Scalar](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(b[0]))
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	default:
		panic(fmt.Sprintf("unreachable scalar type %T", zero))
	}
}

func encodeVals[T types.Scalar](c *column.Column) []byte {
	vals := column.MustData[T](c)
	buf := make([]byte, 0, len(vals)*scalarWidth[T]())
	for _, v := range vals {
		buf = appendScalar(buf, v)
	}
	return buf
}

type encodeFunctor struct {
	col *column.Column
}

func (f encodeFunctor) Int8() []byte    { return encodeVals[int8](f.col) }
func (f encodeFunctor) Int16() []byte   { return encodeVals[int16](f.col) }
func (f encodeFunctor) Int32() []byte   { return encodeVals[int32](f.col) }
func (f encodeFunctor) Int64() []byte   { return encodeVals[int64](f.col) }
func (f encodeFunctor) Float32() []byte { return encodeVals[float32](f.col) }
func (f encodeFunctor) Float64() []byte { return encodeVals[float64](f.col) }

// decodeResult keeps the Functor result type uniform while payload validation
// can still fail per type.
type decodeResult struct {
	col *column.Column
	err error
}

func decodeVals[T types.Scalar](raw []byte, rows int, mask *column.ValidityMask) decodeResult {
	w := scalarWidth[T]()
	if len(raw) != rows*w {
		return decodeResult{err: fmt.Errorf("value block size %d does not match %d rows of width %d", len(raw), rows, w)}
	}
	vals := make([]T, rows)
	for i := range vals {
		vals[i] = readScalar[T](raw[i*w:])
	}
	return decodeResult{col: column.FromSliceWithMask(vals, mask)}
}

type decodeFunctor struct {
	raw  []byte
	rows int
	mask *column.ValidityMask
}

func (f decodeFunctor) Int8() decodeResult    { return decodeVals[int8](f.raw, f.rows, f.mask) }
func (f decodeFunctor) Int16() decodeResult   { return decodeVals[int16](f.raw, f.rows, f.mask) }
func (f decodeFunctor) Int32() decodeResult   { return decodeVals[int32](f.raw, f.rows, f.mask) }
func (f decodeFunctor) Int64() decodeResult   { return decodeVals[int64](f.raw, f.rows, f.mask) }
func (f decodeFunctor) Float32() decodeResult { return decodeVals[float32](f.raw, f.rows, f.mask) }
func (f decodeFunctor) Float64() decodeResult { return decodeVals[float64](f.raw, f.rows, f.mask) }
