package termsvg

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is returned when the document cannot be read or
	// its root element has no usable viewBox.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrNumericParse is returned for an operand that is not a number.
	ErrNumericParse = errors.New("numeric parse error")
	// ErrUnsupportedCommand is returned for relative or unknown path letters.
	ErrUnsupportedCommand = errors.New("unsupported path command")
	// ErrDegenerateArc is returned for an arc with a zero radius.
	ErrDegenerateArc = errors.New("degenerate arc")
)

// ElementError records why a single element was dropped from a render.
type ElementError struct {
	Index int    // position of the element in document order
	Kind  string // "path", "line" or "rect"
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%s element %d: %v", e.Kind, e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
