package amfm

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bivar/quat"
	"github.com/cwbudde/algo-bivar/symplectic"
	"github.com/cwbudde/algo-bivar/window"
)

// powerTolerance is the analytic-pair power below which a sample is
// treated as silent: its frequency contribution is zero and orientation
// repeats the previous frame.
const powerTolerance = 1e-12 * 1e-12

// Decompose runs the bivariate AM-FM decomposition on the channel pair
// (u, v). The channels are embedded as a quaternion signal, per-sample
// amplitude and frequency are extracted, and windowed frames at the
// configured stride smooth them into the result sequences.
//
// Degenerate (all-zero) stretches yield amplitude 0, frequency 0, and the
// previous frame's orientation; direct domain errors in the inputs
// (mismatched or empty channels) abort the call.
func Decompose(u, v []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	q, err := symplectic.Split(u, v)
	if err != nil {
		return nil, err
	}

	err = cfg.validate(len(q))
	if err != nil {
		return nil, err
	}

	coeffs := window.Generate(cfg.windowType, cfg.windowLen)

	gain := 0.0
	for _, c := range coeffs {
		gain += c
	}

	if gain <= 0 {
		return nil, fmt.Errorf("%w: window has non-positive coherent gain", ErrInvalidConfig)
	}

	amp, freq := sampleAttributes(q, cfg.sampleRate)

	n := len(q)
	lead := (cfg.windowLen - 1) / 2

	var offset, frames int
	switch cfg.edge {
	case EdgeTrim:
		tail := cfg.windowLen - 1 - lead
		offset = lead
		frames = (n-1-tail-lead)/cfg.stride + 1
	default:
		offset = 0
		frames = (n-1)/cfg.stride + 1
	}

	res := &Result{
		Amplitude: make([]float64, frames),
		Frequency: make([]float64, frames),
		Offset:    offset,
		Stride:    cfg.stride,
	}

	if cfg.euler {
		res.Euler = make([]quat.Euler, frames)
	} else {
		res.Orientation = make([]quat.Quaternion, frames)
	}

	scratch := make([]float64, cfg.windowLen)

	// Orientation continuity state carried across frames: last unit
	// quaternion for hemisphere alignment and degenerate-sample fallback.
	prev := quat.Identity()

	for k := 0; k < frames; k++ {
		center := offset + k*cfg.stride
		start := center - lead

		res.Amplitude[k] = frameMean(scratch, amp, coeffs, start, gain)
		res.Frequency[k] = frameMean(scratch, freq, coeffs, start, gain)

		o := prev
		if s := q[center]; s.NormSq() >= powerTolerance {
			o, _ = s.Normalize()
			if quat.Dot(o, prev) < 0 {
				o = quat.Scale(-1, o)
			}
		}

		prev = o

		if cfg.euler {
			e, eerr := quat.ToEuler(o)
			if eerr != nil {
				return nil, fmt.Errorf("amfm: frame %d: %w", k, eerr)
			}

			res.Euler[k] = e
		} else {
			res.Orientation[k] = o
		}
	}

	return res, nil
}

// frameMean gathers one frame of src (mirroring at the record edges),
// applies the window, and returns the coherent-gain-normalized mean.
func frameMean(scratch, src, coeffs []float64, start int, gain float64) float64 {
	n := len(src)
	for j := range scratch {
		scratch[j] = src[reflect(start+j, n)]
	}

	vecmath.MulBlockInPlace(scratch, coeffs)

	sum := 0.0
	for _, s := range scratch {
		sum += s
	}

	return sum / gain
}

// reflect mirrors an out-of-range index back into [0, n) without
// repeating the boundary sample. Frame extents never exceed the record,
// so a single reflection suffices.
func reflect(i, n int) int {
	if i < 0 {
		i = -i
	}

	if i >= n {
		i = 2*n - 2 - i
	}

	return i
}

// sampleAttributes derives per-sample amplitude and instantaneous
// frequency from the embedded signal.
//
// Frequency is the power-weighted mean of the two analytic channel phase
// derivatives: the phases of E1 = W + Y*i and E2 = X + Z*i are unwrapped
// with an explicit left-to-right carry, differentiated with centered
// differences (one-sided at the record ends), and combined with weights
// |E1|^2, |E2|^2. Samples with vanishing total power get frequency 0.
func sampleAttributes(q []quat.Quaternion, rate float64) (amp, freq []float64) {
	n := len(q)

	amp = make([]float64, n)
	freq = make([]float64, n)

	p1 := make([]float64, n)
	p2 := make([]float64, n)
	phi1 := make([]float64, n)
	phi2 := make([]float64, n)

	for i, s := range q {
		amp[i] = s.Norm()
		p1[i] = s.W*s.W + s.Y*s.Y
		p2[i] = s.X*s.X + s.Z*s.Z
		phi1[i] = math.Atan2(s.Y, s.W)
		phi2[i] = math.Atan2(s.Z, s.X)
	}

	unwrap(phi1)
	unwrap(phi2)

	scale := rate / (2 * math.Pi)

	for i := range freq {
		total := p1[i] + p2[i]
		if total < powerTolerance {
			continue
		}

		d1 := derive(phi1, i)
		d2 := derive(phi2, i)

		freq[i] = (p1[i]*d1 + p2[i]*d2) / total * scale
	}

	return amp, freq
}

// unwrap removes +/-2*pi jumps in place, carrying the accumulated offset
// explicitly from sample to sample.
func unwrap(phase []float64) {
	offset := 0.0

	for i := 1; i < len(phase); i++ {
		d := phase[i] + offset - phase[i-1]

		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		phase[i] += offset
	}
}

// derive is the phase derivative at index i: centered difference in the
// interior, one-sided at the ends.
func derive(phase []float64, i int) float64 {
	switch {
	case len(phase) < 2:
		return 0
	case i == 0:
		return phase[1] - phase[0]
	case i == len(phase)-1:
		return phase[i] - phase[i-1]
	default:
		return (phase[i+1] - phase[i-1]) / 2
	}
}
