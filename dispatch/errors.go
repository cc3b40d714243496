package dispatch

import (
	"errors"
	"fmt"

	"github.com/DonnieKim411/cudf/types"
)

// ErrUnsupported is the sentinel matched by errors.Is for every
// unsupported-tag failure, regardless of which tag caused it.
var ErrUnsupported = errors.New("unsupported type id")

// ErrUnsupportedType indicates a dispatch with a tag that resolves to no
// representation type: the sentinel, a value outside the enumerated set, or a
// custom mapping result outside the set.
//
// errors.Is(err, ErrUnsupported) matches via Unwrap.
type ErrUnsupportedType struct {
	ID types.TypeID
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type id: %s", e.ID)
}

func (e *ErrUnsupportedType) Unwrap() error { return ErrUnsupported }
