package qfft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-bivar/quat"
)

// Plan performs forward and inverse quaternion FFTs of a fixed size.
type Plan struct {
	size int
	fft  *algofft.Plan[complex128]

	// scratch for the two complex sub-transforms
	in1, in2   []complex128
	out1, out2 []complex128
}

// NewPlan creates a QFT plan for signals of the given length.
func NewPlan(size int) (*Plan, error) {
	if size <= 0 {
		return nil, fmt.Errorf("qfft: plan size must be > 0: %d", size)
	}

	fft, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("qfft: failed to create FFT plan: %w", err)
	}

	return &Plan{
		size: size,
		fft:  fft,
		in1:  make([]complex128, size),
		in2:  make([]complex128, size),
		out1: make([]complex128, size),
		out2: make([]complex128, size),
	}, nil
}

// Size returns the plan transform length.
func (p *Plan) Size() int {
	return p.size
}

// Forward computes dst = QFT(src). Both slices must have the plan size.
func (p *Plan) Forward(dst, src []quat.Quaternion) error {
	err := p.check(dst, src)
	if err != nil {
		return err
	}

	for i, q := range src {
		p.in1[i] = complex(q.W, q.Y)
		p.in2[i] = complex(q.X, q.Z)
	}

	err = p.fft.Forward(p.out1, p.in1)
	if err != nil {
		return fmt.Errorf("qfft: forward FFT failed: %w", err)
	}

	err = p.fft.Forward(p.out2, p.in2)
	if err != nil {
		return fmt.Errorf("qfft: forward FFT failed: %w", err)
	}

	recombine(dst, p.out1, p.out2)

	return nil
}

// Inverse computes dst = QFT^-1(src). Both slices must have the plan size.
// Forward followed by Inverse reproduces the input within floating-point
// tolerance.
func (p *Plan) Inverse(dst, src []quat.Quaternion) error {
	err := p.check(dst, src)
	if err != nil {
		return err
	}

	for i, q := range src {
		p.in1[i] = complex(q.W, q.Y)
		p.in2[i] = complex(q.X, q.Z)
	}

	err = p.fft.Inverse(p.out1, p.in1)
	if err != nil {
		return fmt.Errorf("qfft: inverse FFT failed: %w", err)
	}

	err = p.fft.Inverse(p.out2, p.in2)
	if err != nil {
		return fmt.Errorf("qfft: inverse FFT failed: %w", err)
	}

	recombine(dst, p.out1, p.out2)

	return nil
}

func (p *Plan) check(dst, src []quat.Quaternion) error {
	if len(src) != p.size || len(dst) != p.size {
		return fmt.Errorf("qfft: slice length mismatch: dst=%d src=%d plan=%d",
			len(dst), len(src), p.size)
	}

	return nil
}

// recombine packs the two j-plane spectra back into quaternion bins:
// X = c1 + i*c2 with c1 = (W, Y) and c2 = (X, Z).
func recombine(dst []quat.Quaternion, c1, c2 []complex128) {
	for i := range dst {
		dst[i] = quat.Quaternion{
			W: real(c1[i]),
			Y: imag(c1[i]),
			X: real(c2[i]),
			Z: imag(c2[i]),
		}
	}
}

// Freqs returns the frequency axis for an n-point transform at sample
// spacing dt, in FFT bin order: 0, 1/(n*dt), ..., then the negative
// frequencies.
func Freqs(n int, dt float64) []float64 {
	if n <= 0 || dt <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := 1 / (float64(n) * dt)

	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * step
	}

	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * step
	}

	return out
}
