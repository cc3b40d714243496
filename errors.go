package cudf

import (
	"errors"
	"fmt"

	"github.com/DonnieKim411/cudf/dispatch"
)

var (
	// ErrColumnExists is returned when adding a column under a name that is
	// already taken.
	ErrColumnExists = errors.New("column already exists")
	// ErrColumnNotFound is returned when looking up a column by an unknown
	// name.
	ErrColumnNotFound = errors.New("column not found")
	// ErrUnsupportedType unifies the dispatch layer's unsupported-tag
	// failures at the table surface.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ErrRowCountMismatch indicates a column whose length disagrees with the
// table's row count.
type ErrRowCountMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrRowCountMismatch) Error() string {
	return fmt.Sprintf("row count mismatch: table has %d rows, column has %d", e.Expected, e.Actual)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, dispatch.ErrUnsupported) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return err
}
