package symplectic

import "errors"

var (
	// ErrLengthMismatch reports channel slices of unequal length.
	ErrLengthMismatch = errors.New("symplectic: channel length mismatch")

	// ErrEmptyInput reports an empty input signal.
	ErrEmptyInput = errors.New("symplectic: empty input")
)
