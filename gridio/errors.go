package gridio

import "errors"

var (
	// ErrEmptyGrid indicates the input has no lines or no columns.
	ErrEmptyGrid = errors.New("gridio: input grid must have at least one line and one column")
	// ErrNonRectangular indicates lines of differing lengths.
	ErrNonRectangular = errors.New("gridio: all lines must have the same length")
)
