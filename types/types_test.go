package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeIDString(t *testing.T) {
	tests := []struct {
		id       TypeID
		expected string
	}{
		{Empty, "EMPTY"},
		{Int8, "INT8"},
		{Int16, "INT16"},
		{Int32, "INT32"},
		{Int64, "INT64"},
		{Float32, "FLOAT32"},
		{Float64, "FLOAT64"},
		{TypeID(42), "TypeID(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.String())
		})
	}
}

func TestTypeIDValid(t *testing.T) {
	assert.False(t, Empty.Valid())
	assert.False(t, NumTypeIDs.Valid())
	assert.False(t, TypeID(99).Valid())

	for id := Int8; id <= Float64; id++ {
		assert.True(t, id.Valid(), id.String())
	}
}

func TestTypeIDClassification(t *testing.T) {
	tests := []struct {
		id        TypeID
		isInteger bool
		isFloat   bool
	}{
		{Empty, false, false},
		{Int8, true, false},
		{Int16, true, false},
		{Int32, true, false},
		{Int64, true, false},
		{Float32, false, true},
		{Float64, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			assert.Equal(t, tt.isInteger, tt.id.IsInteger())
			assert.Equal(t, tt.isFloat, tt.id.IsFloat())
		})
	}
}

func TestDataType(t *testing.T) {
	dt := New(Int32)
	assert.Equal(t, Int32, dt.ID())
	assert.Equal(t, "INT32", dt.String())

	// The zero descriptor carries the sentinel.
	var zero DataType
	assert.Equal(t, Empty, zero.ID())
}
