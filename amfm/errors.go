package amfm

import "errors"

var (
	// ErrInvalidConfig reports an unusable analysis configuration
	// (unknown window, non-positive length or stride, window longer than
	// the record).
	ErrInvalidConfig = errors.New("amfm: invalid configuration")
)
