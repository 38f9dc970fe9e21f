package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBlockOutOfBounds indicates an obstacle block that does not fit the grid.
	ErrBlockOutOfBounds = errors.New("grid: block lies outside the grid")
	// ErrUnknownAction indicates an action label other than up, down, left or right.
	ErrUnknownAction = errors.New("grid: unknown action")
)
