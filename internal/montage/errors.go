package montage

import "errors"

// Common errors.
var (
	ErrNoMatchingNames = errors.New("none of the requested names are in the montage")
	ErrLengthMismatch  = errors.New("positions and names differ in length")
)
