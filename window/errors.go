package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

// Validate reports whether a window specification is usable for analysis.
func Validate(t Type, length int) error {
	if !t.Valid() {
		return fmt.Errorf("unknown window type: %d", int(t))
	}

	if length <= 0 {
		return fmt.Errorf("window size must be > 0: %d", length)
	}

	return nil
}
