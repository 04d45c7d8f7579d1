package record

import (
	"errors"
	"fmt"
)

// ErrInvalidInputFormat is returned (wrapped in a *FormatError) when the
// input is not an array of objects with scalar values.
var ErrInvalidInputFormat = errors.New("invalid input format")

type FormatError struct {
	// Size is the number of elements in the input array, or -1 when the
	// input is not an array at all.
	Size int
	// Index is the first offending element, or -1 for the top level.
	Index int
	// Field is set when a single field value has the wrong shape.
	Field string
	Shape string
	Want  string
}

func (e *FormatError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%v: input is %s, want %s", ErrInvalidInputFormat, e.Shape, e.Want)
	case e.Field != "":
		return fmt.Sprintf("%v: element %d of %d: field %q is %s, want %s", ErrInvalidInputFormat, e.Index, e.Size, e.Field, e.Shape, e.Want)
	default:
		return fmt.Sprintf("%v: element %d of %d is %s, want %s", ErrInvalidInputFormat, e.Index, e.Size, e.Shape, e.Want)
	}
}

func (e *FormatError) Unwrap() error { return ErrInvalidInputFormat }
