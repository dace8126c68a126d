// core/stkfile/errors.go
package stkfile

import (
	"errors"
	"fmt"
)

// Hard validation failures abort the whole write; nothing is emitted.
var (
	ErrInvalidTimeOrder  = errors.New("invalid time order")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrIO                = errors.New("io failure")
)

// RowWarning records a sample excluded during lenient validation.
// Dropping is caller-visible but non-fatal.
type RowWarning struct {
	Index  int
	Reason string
}

func (w RowWarning) String() string {
	return fmt.Sprintf("row %d dropped: %s", w.Index, w.Reason)
}
