package column

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ValidityMask tracks which rows of a column hold a value. A set bit means
// the row is valid; a cleared bit means null. It wraps a 32-bit Roaring
// bitmap.
type ValidityMask struct {
	rb *roaring.Bitmap
}

// NewValidityMask creates an empty mask (every row null).
func NewValidityMask() *ValidityMask {
	return &ValidityMask{
		rb: roaring.New(),
	}
}

// AllValid creates a mask with rows [0, n) all valid.
func AllValid(n int) *ValidityMask {
	m := NewValidityMask()
	if n > 0 {
		m.rb.AddRange(0, uint64(n))
	}
	return m
}

// SetValid marks row i as valid.
func (m *ValidityMask) SetValid(i int) {
	m.rb.Add(uint32(i))
}

// SetNull marks row i as null.
func (m *ValidityMask) SetNull(i int) {
	m.rb.Remove(uint32(i))
}

// IsValid reports whether row i holds a value.
func (m *ValidityMask) IsValid(i int) bool {
	return m.rb.Contains(uint32(i))
}

// CountValid returns the number of valid rows.
func (m *ValidityMask) CountValid() int {
	return int(m.rb.GetCardinality())
}

// Max returns the highest valid row index. ok is false when no row is
// valid.
func (m *ValidityMask) Max() (i int, ok bool) {
	if m.rb.IsEmpty() {
		return 0, false
	}
	return int(m.rb.Maximum()), true
}

// Clone returns a deep copy of the mask.
func (m *ValidityMask) Clone() *ValidityMask {
	return &ValidityMask{
		rb: m.rb.Clone(),
	}
}

// And intersects m with other in place. The result is valid where both masks
// were valid.
func (m *ValidityMask) And(other *ValidityMask) {
	m.rb.And(other.rb)
}

// Or unions other into m in place.
func (m *ValidityMask) Or(other *ValidityMask) {
	m.rb.Or(other.rb)
}

// Iterator returns an iterator over the valid row indices in ascending
// order.
func (m *ValidityMask) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// MarshalBinary serializes the mask in the portable Roaring format.
func (m *ValidityMask) MarshalBinary() ([]byte, error) {
	return m.rb.MarshalBinary()
}

// UnmarshalValidityMask deserializes a mask produced by MarshalBinary.
func UnmarshalValidityMask(data []byte) (*ValidityMask, error) {
	m := NewValidityMask()
	if err := m.rb.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}
