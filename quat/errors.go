package quat

import "errors"

var (
	// ErrZeroNorm reports an operation that requires a non-zero quaternion
	// (inversion, normalization, logarithm, Euler conversion).
	ErrZeroNorm = errors.New("quat: zero-norm quaternion")
)
