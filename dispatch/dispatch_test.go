package dispatch

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DonnieKim411/cudf/types"
)

var supportedIDs = []types.TypeID{
	types.Int8, types.Int16, types.Int32, types.Int64,
	types.Float32, types.Float64,
}

// countingWidth returns the byte width of the bound type and counts
// invocations.
type countingWidth struct {
	calls *int
}

func cw[T types.Scalar](calls *int) int {
	*calls++
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (f countingWidth) Int8() int    { return cw[int8](f.calls) }
func (f countingWidth) Int16() int   { return cw[int16](f.calls) }
func (f countingWidth) Int32() int   { return cw[int32](f.calls) }
func (f countingWidth) Int64() int   { return cw[int64](f.calls) }
func (f countingWidth) Float32() int { return cw[float32](f.calls) }
func (f countingWidth) Float64() int { return cw[float64](f.calls) }

func TestDispatchWidths(t *testing.T) {
	tests := []struct {
		id       types.TypeID
		expected int
	}{
		{types.Int8, 1},
		{types.Int16, 2},
		{types.Int32, 4},
		{types.Int64, 8},
		{types.Float32, 4},
		{types.Float64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			var calls int
			got, err := Dispatch[int](types.New(tt.id), countingWidth{calls: &calls})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, 1, calls, "functor must be invoked exactly once")
		})
	}
}

func TestDispatchUnsupported(t *testing.T) {
	tests := []struct {
		name string
		id   types.TypeID
	}{
		{"Sentinel", types.Empty},
		{"Bound", types.NumTypeIDs},
		{"OutOfRange", types.TypeID(99)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			got, err := Dispatch[int](types.New(tt.id), countingWidth{calls: &calls})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupported)

			var ute *ErrUnsupportedType
			require.ErrorAs(t, err, &ute)
			assert.Equal(t, tt.id, ute.ID)

			assert.Zero(t, got)
			assert.Zero(t, calls, "functor must not be invoked on failure")
		})
	}
}

func TestDispatchIdempotent(t *testing.T) {
	dt := types.New(types.Int64)

	var calls int
	first, err := Dispatch[int](dt, countingWidth{calls: &calls})
	require.NoError(t, err)
	second, err := Dispatch[int](dt, countingWidth{calls: &calls})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls)
}

func TestMustDispatch(t *testing.T) {
	var calls int
	got := MustDispatch[int](types.New(types.Float32), countingWidth{calls: &calls})
	assert.Equal(t, 4, got)

	assert.PanicsWithError(t, "unsupported type id: EMPTY", func() {
		MustDispatch[int](types.New(types.Empty), countingWidth{calls: &calls})
	})
}

func TestDispatchConcurrent(t *testing.T) {
	// Dispatch holds no state; hammer it from parallel goroutines under the
	// race detector.
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range 1000 {
				id := supportedIDs[i%len(supportedIDs)]
				var calls int
				_, err := Dispatch[int](types.New(id), countingWidth{calls: &calls})
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
