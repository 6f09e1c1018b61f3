package stokes

import "errors"

var (
	// ErrZeroIntensity reports a Stokes vector with vanishing total
	// intensity S0, for which normalization and attitude angles are
	// undefined.
	ErrZeroIntensity = errors.New("stokes: zero total intensity")
)
