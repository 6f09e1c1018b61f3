package amfm

import (
	"fmt"

	"github.com/cwbudde/algo-bivar/window"
)

// EdgePolicy selects how frames near the record boundaries are handled.
type EdgePolicy int

const (
	// EdgeMirror reflects the per-sample attribute sequences at both ends
	// so that every stride position owns a full frame. Output frames span
	// the whole record.
	EdgeMirror EdgePolicy = iota

	// EdgeTrim emits only frames whose window lies fully inside the
	// record; the skipped lead-in is reported in [Result.Offset].
	EdgeTrim
)

// Option configures a decomposition.
type Option func(*config)

type config struct {
	windowType window.Type
	windowLen  int
	stride     int
	sampleRate float64
	euler      bool
	edge       EdgePolicy
}

func defaultConfig() config {
	return config{
		windowType: window.TypeHann,
		windowLen:  63,
		stride:     1,
		sampleRate: 1,
		edge:       EdgeMirror,
	}
}

// WithWindow sets the analysis window type and length.
func WithWindow(t window.Type, length int) Option {
	return func(c *config) {
		c.windowType = t
		c.windowLen = length
	}
}

// WithStride sets the hop between analysis frames. Stride 1 (default)
// produces one output entry per input sample.
func WithStride(stride int) Option {
	return func(c *config) {
		c.stride = stride
	}
}

// WithSampleRate sets the sample rate used to scale instantaneous
// frequency; with the default rate 1 frequencies are in cycles/sample.
func WithSampleRate(rate float64) Option {
	return func(c *config) {
		c.sampleRate = rate
	}
}

// WithEulerOrientation emits orientation as Z-Y-X Euler triples instead
// of unit quaternions.
func WithEulerOrientation() Option {
	return func(c *config) {
		c.euler = true
	}
}

// WithEdgePolicy selects the boundary handling.
func WithEdgePolicy(p EdgePolicy) Option {
	return func(c *config) {
		c.edge = p
	}
}

func (c config) validate(signalLen int) error {
	err := window.Validate(c.windowType, c.windowLen)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.stride <= 0 {
		return fmt.Errorf("%w: stride must be > 0: %d", ErrInvalidConfig, c.stride)
	}

	if c.sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, c.sampleRate)
	}

	if c.windowLen > signalLen {
		return fmt.Errorf("%w: window length %d exceeds signal length %d",
			ErrInvalidConfig, c.windowLen, signalLen)
	}

	if c.edge != EdgeMirror && c.edge != EdgeTrim {
		return fmt.Errorf("%w: unknown edge policy: %d", ErrInvalidConfig, int(c.edge))
	}

	return nil
}
