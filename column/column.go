package column

import (
	"slices"

	"github.com/DonnieKim411/cudf/dispatch"
	"github.com/DonnieKim411/cudf/types"
)

// Column is an immutable typed buffer with a runtime type descriptor.
//
// The buffer element type always matches the descriptor: every constructor
// derives the descriptor from the static element type via dispatch.TagOf, so
// the two cannot drift apart.
type Column struct {
	dtype  types.DataType
	length int
	data   any // []T for the representation type named by dtype
	mask   *ValidityMask
}

// FromSlice builds a column from vals with every row valid. The input is
// copied.
func FromSlice[T types.Scalar](vals []T) *Column {
	return FromSliceWithMask(vals, nil)
}

// FromSliceWithMask builds a column from vals with the given validity mask.
// A nil mask means every row is valid. The input slice is copied; the mask is
// not.
func FromSliceWithMask[T types.Scalar](vals []T, mask *ValidityMask) *Column {
	return &Column{
		dtype:  types.New(dispatch.TagOf[T]()),
		length: len(vals),
		data:   slices.Clone(vals),
		mask:   mask,
	}
}

// DataType returns the column's type descriptor.
func (c *Column) DataType() types.DataType { return c.dtype }

// Len returns the number of rows, valid or not.
func (c *Column) Len() int { return c.length }

// Mask returns the validity mask, or nil when every row is valid.
func (c *Column) Mask() *ValidityMask { return c.mask }

// HasNulls reports whether any row is null.
func (c *Column) HasNulls() bool {
	return c.mask != nil && c.mask.CountValid() < c.length
}

// NullCount returns the number of null rows.
func (c *Column) NullCount() int {
	if c.mask == nil {
		return 0
	}
	return c.length - c.mask.CountValid()
}

// IsValid reports whether row i holds a value.
func (c *Column) IsValid(i int) bool {
	return c.mask == nil || c.mask.IsValid(i)
}

// Data returns the typed view of the column buffer. The requested T must
// match the descriptor. The returned slice is shared with the column and must
// not be modified.
func Data[T types.Scalar](c *Column) ([]T, error) {
	want := dispatch.TagOf[T]()
	if got := c.dtype.ID(); got != want {
		return nil, &ErrTypeMismatch{Want: want, Got: got}
	}
	return c.data.([]T), nil
}

// MustData is Data for call sites where the binding was already established
// by a dispatch on the column's own descriptor; a mismatch panics.
func MustData[T types.Scalar](c *Column) []T {
	d, err := Data[T](c)
	if err != nil {
		panic(err)
	}
	return d
}

// Builder assembles a column incrementally. The zero value is ready to use.
type Builder[T types.Scalar] struct {
	vals     []T
	mask     *ValidityMask
	hasNulls bool
}

// Append adds a valid value.
func (b *Builder[T]) Append(v T) {
	if b.mask == nil {
		b.mask = NewValidityMask()
	}
	b.mask.SetValid(len(b.vals))
	b.vals = append(b.vals, v)
}

// AppendNull adds a null row.
func (b *Builder[T]) AppendNull() {
	if b.mask == nil {
		b.mask = NewValidityMask()
	}
	var zero T
	b.vals = append(b.vals, zero)
	b.hasNulls = true
}

// Len returns the number of rows appended so far.
func (b *Builder[T]) Len() int { return len(b.vals) }

// Finish seals the builder into a column. The builder must not be reused.
func (b *Builder[T]) Finish() *Column {
	var mask *ValidityMask
	if b.hasNulls {
		mask = b.mask
	}
	c := FromSliceWithMask(b.vals, mask)
	b.vals = nil
	b.mask = nil
	return c
}
