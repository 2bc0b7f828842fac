package guigrid

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is returned by searches that did not match any row.
const NotFound = -1

var (
	// ErrNotEditable is returned when writing to
	// an element or grid that is not changeable.
	ErrNotEditable = errors.New("not changeable")

	// ErrNotGrid is returned by NewGrid for an element
	// whose type is not listed in GridTypes.
	ErrNotGrid = errors.New("element is not a grid")
)

// UnknownColumnError is returned when a column name
// is not part of a grid's column order.
type UnknownColumnError struct {
	Name  string
	Known []string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q, available columns: %s", e.Name, strings.Join(e.Known, ", "))
}

// ExternalCallError wraps an error returned by the automation host.
// Row and Col are -1 if the operation does not address a cell.
type ExternalCallError struct {
	Op  string
	Row int
	Col int
	Err error
}

func (e *ExternalCallError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%s(%d, %d): %s", e.Op, e.Row, e.Col, e.Err)
	case e.Row >= 0:
		return fmt.Sprintf("%s(%d): %s", e.Op, e.Row, e.Err)
	case e.Col >= 0:
		return fmt.Sprintf("%s(col %d): %s", e.Op, e.Col, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *ExternalCallError) Unwrap() error { return e.Err }
