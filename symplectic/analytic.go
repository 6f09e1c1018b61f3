package symplectic

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Analytic returns the analytic signal x + i*H(x) of a real channel via
// the frequency-domain Hilbert construction: positive-frequency bins are
// doubled, DC (and Nyquist for even lengths) kept, negative frequencies
// zeroed.
func Analytic(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	if n == 1 {
		return []complex128{complex(x[0], 0)}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("symplectic: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	spec := make([]complex128, n)

	err = plan.Forward(spec, in)
	if err != nil {
		return nil, fmt.Errorf("symplectic: forward FFT failed: %w", err)
	}

	// One-sided spectrum scaling. For even n the Nyquist bin n/2 is kept
	// unscaled alongside DC.
	half := n / 2
	for k := 1; k < half; k++ {
		spec[k] *= 2
	}

	if n%2 != 0 {
		spec[half] *= 2
	}

	for k := half + 1; k < n; k++ {
		spec[k] = 0
	}

	out := make([]complex128, n)

	err = plan.Inverse(out, spec)
	if err != nil {
		return nil, fmt.Errorf("symplectic: inverse FFT failed: %w", err)
	}

	return out, nil
}
