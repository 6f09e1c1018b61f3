package spectral

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bivar/qfft"
	"github.com/cwbudde/algo-bivar/quat"
	"github.com/cwbudde/algo-bivar/stokes"
)

var (
	// ErrAxisMismatch reports an attempt to combine estimates computed
	// over different frequency axes.
	ErrAxisMismatch = errors.New("spectral: frequency axis mismatch")
)

// Estimate is a quaternion spectral density estimate: per-bin Stokes
// spectra over an FFT-ordered frequency axis.
type Estimate struct {
	// Freq is the frequency axis in FFT bin order (see [qfft.Freqs]).
	Freq []float64

	// Density holds the non-normalized Stokes spectra; Density[k].S0 is
	// the power spectral density at Freq[k].
	Density []stokes.Vector

	// Normalized holds the S0-normalized Stokes spectra; nil until
	// [Estimate.Normalize] runs.
	Normalized []stokes.Vector

	// Phi is the per-bin degree of polarization; nil until
	// [Estimate.Normalize] runs.
	Phi []float64
}

// Periodogram computes the raw quaternion periodogram of an embedded
// signal sampled at spacing dt.
func Periodogram(q []quat.Quaternion, dt float64) (*Estimate, error) {
	spec, err := transform(q, dt)
	if err != nil {
		return nil, err
	}

	n := len(q)
	scale := dt / float64(n)

	density := stokes.FromSignal(spec)
	for i := range density {
		density[i] = scaleVector(density[i], scale)
	}

	return &Estimate{
		Freq:    qfft.Freqs(n, dt),
		Density: density,
	}, nil
}

// Multitaper computes a sine-taper multitaper estimate with spectral
// bandwidth bw (in Rayleigh resolutions): floor(2*bw)-1 orthonormal
// tapers are applied and their periodograms averaged. bw must yield at
// least one taper.
func Multitaper(q []quat.Quaternion, dt, bw float64) (*Estimate, error) {
	n := len(q)
	if n == 0 {
		return nil, fmt.Errorf("spectral: empty signal")
	}

	tapers := int(math.Floor(2*bw)) - 1
	if tapers < 1 {
		return nil, fmt.Errorf("spectral: bandwidth %g yields no tapers", bw)
	}

	plan, err := qfft.NewPlan(n)
	if err != nil {
		return nil, err
	}

	if dt <= 0 {
		return nil, fmt.Errorf("spectral: sample spacing must be > 0: %g", dt)
	}

	tapered := make([]quat.Quaternion, n)
	spec := make([]quat.Quaternion, n)
	density := make([]stokes.Vector, n)

	for k := 0; k < tapers; k++ {
		taper := sineTaper(k, n)

		for i, s := range q {
			tapered[i] = quat.Scale(taper[i], s)
		}

		err = plan.Forward(spec, tapered)
		if err != nil {
			return nil, err
		}

		// Orthonormal tapers need no 1/N: sum(taper^2) == 1.
		for i, v := range stokes.FromSignal(spec) {
			density[i] = addVector(density[i], scaleVector(v, dt))
		}
	}

	inv := 1 / float64(tapers)
	for i := range density {
		density[i] = scaleVector(density[i], inv)
	}

	return &Estimate{
		Freq:    qfft.Freqs(n, dt),
		Density: density,
	}, nil
}

// Normalize fills the normalized Stokes spectra and the degree of
// polarization. The tolerance regularizer is relative to the peak S0 of
// the estimate; with tol = 0 an empty bin aborts with
// [stokes.ErrZeroIntensity].
func (e *Estimate) Normalize(tol float64) error {
	normalized, err := stokes.NormalizeSignal(e.Density, tol)
	if err != nil {
		return fmt.Errorf("spectral: %w", err)
	}

	phi := make([]float64, len(normalized))
	for i, v := range normalized {
		phi[i] = math.Sqrt(v.S1*v.S1 + v.S2*v.S2 + v.S3*v.S3)
	}

	e.Normalized = normalized
	e.Phi = phi

	return nil
}

// Add returns a new estimate whose density is the sum of e and other.
// Both must share the same frequency axis. Normalization state is not
// carried over; call [Estimate.Normalize] on the result if needed.
func (e *Estimate) Add(other *Estimate) (*Estimate, error) {
	err := e.checkAxis(other)
	if err != nil {
		return nil, err
	}

	density := make([]stokes.Vector, len(e.Density))
	for i := range density {
		density[i] = addVector(e.Density[i], other.Density[i])
	}

	return &Estimate{
		Freq:    append([]float64(nil), e.Freq...),
		Density: density,
	}, nil
}

// Scale returns a new estimate with the density multiplied by s.
func (e *Estimate) Scale(s float64) *Estimate {
	density := make([]stokes.Vector, len(e.Density))
	for i := range density {
		density[i] = scaleVector(e.Density[i], s)
	}

	return &Estimate{
		Freq:    append([]float64(nil), e.Freq...),
		Density: density,
	}
}

func (e *Estimate) checkAxis(other *Estimate) error {
	if len(e.Freq) != len(other.Freq) {
		return fmt.Errorf("%w: %d vs %d bins", ErrAxisMismatch, len(e.Freq), len(other.Freq))
	}

	for i := range e.Freq {
		if e.Freq[i] != other.Freq[i] {
			return fmt.Errorf("%w: bin %d: %g vs %g", ErrAxisMismatch, i, e.Freq[i], other.Freq[i])
		}
	}

	return nil
}

func transform(q []quat.Quaternion, dt float64) ([]quat.Quaternion, error) {
	if len(q) == 0 {
		return nil, fmt.Errorf("spectral: empty signal")
	}

	if dt <= 0 {
		return nil, fmt.Errorf("spectral: sample spacing must be > 0: %g", dt)
	}

	plan, err := qfft.NewPlan(len(q))
	if err != nil {
		return nil, err
	}

	spec := make([]quat.Quaternion, len(q))

	err = plan.Forward(spec, q)
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// sineTaper returns the k-th orthonormal sine taper of length n.
func sineTaper(k, n int) []float64 {
	out := make([]float64, n)
	norm := math.Sqrt(2 / float64(n+1))

	for i := range out {
		out[i] = norm * math.Sin(math.Pi*float64(k+1)*float64(i+1)/float64(n+1))
	}

	return out
}

func addVector(a, b stokes.Vector) stokes.Vector {
	return stokes.Vector{
		S0: a.S0 + b.S0,
		S1: a.S1 + b.S1,
		S2: a.S2 + b.S2,
		S3: a.S3 + b.S3,
	}
}

func scaleVector(v stokes.Vector, s float64) stokes.Vector {
	return stokes.Vector{
		S0: s * v.S0,
		S1: s * v.S1,
		S2: s * v.S2,
		S3: s * v.S3,
	}
}
