package amfm

import "github.com/cwbudde/algo-bivar/quat"

// Result holds the parallel output sequences of a decomposition, one
// entry per analysis frame. It is immutable after return.
type Result struct {
	// Amplitude is the window-smoothed instantaneous amplitude |q|,
	// non-negative.
	Amplitude []float64

	// Frequency is the instantaneous frequency, in cycles/sample or Hz
	// depending on the configured sample rate.
	Frequency []float64

	// Orientation holds unit orientation quaternions, hemisphere-aligned
	// frame to frame. Nil when Euler output was requested.
	Orientation []quat.Quaternion

	// Euler holds Z-Y-X Euler triples. Nil unless requested via
	// [WithEulerOrientation].
	Euler []quat.Euler

	// Offset is the input index of the first frame center (non-zero only
	// under [EdgeTrim]).
	Offset int

	// Stride is the hop between frame centers in input samples.
	Stride int
}

// Len returns the number of analysis frames.
func (r *Result) Len() int {
	return len(r.Amplitude)
}

// Center returns the input sample index at the center of frame i.
func (r *Result) Center(i int) int {
	return r.Offset + i*r.Stride
}
