package dataset

import "errors"

var (
	// ErrInputNotFound is returned when the input file does not exist.
	// It wraps fs.ErrNotExist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("input is empty or has no header")
)
