package column

import (
	"fmt"

	"github.com/DonnieKim411/cudf/types"
)

// ErrTypeMismatch indicates a typed access whose requested representation
// type disagrees with the column's descriptor.
type ErrTypeMismatch struct {
	Want types.TypeID
	Got  types.TypeID
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("column type mismatch: want %s, got %s", e.Want, e.Got)
}
