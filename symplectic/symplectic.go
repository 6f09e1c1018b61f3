package symplectic

import (
	"fmt"

	"github.com/cwbudde/algo-bivar/quat"
)

// Split embeds the bivariate signal (u, v) into a quaternion signal using
// the module's fixed convention q = u + v*i + H(u)*j + H(v)*k.
//
// Both channels must have equal, non-zero length; otherwise
// [ErrLengthMismatch] or [ErrEmptyInput] is returned.
func Split(u, v []float64) ([]quat.Quaternion, error) {
	if len(u) != len(v) {
		return nil, fmt.Errorf("%w: u=%d v=%d", ErrLengthMismatch, len(u), len(v))
	}

	if len(u) == 0 {
		return nil, ErrEmptyInput
	}

	au, err := Analytic(u)
	if err != nil {
		return nil, err
	}

	av, err := Analytic(v)
	if err != nil {
		return nil, err
	}

	out := make([]quat.Quaternion, len(u))
	for i := range out {
		out[i] = quat.Quaternion{
			W: u[i],
			X: v[i],
			Y: imag(au[i]),
			Z: imag(av[i]),
		}
	}

	return out, nil
}

// Synth reconstructs the two channels from a quaternion signal. It is the
// exact algebraic inverse of [Split]: the quadrature components are not
// consulted, so Synth(Split(u, v)) reproduces (u, v) bit for bit.
func Synth(q []quat.Quaternion) (u, v []float64, err error) {
	if len(q) == 0 {
		return nil, nil, ErrEmptyInput
	}

	u = make([]float64, len(q))
	v = make([]float64, len(q))

	for i, s := range q {
		u[i] = s.W
		v[i] = s.X
	}

	return u, v, nil
}

// PairSplit decomposes a quaternion signal along the symplectic (1, i)
// pair: q = s + t*j with s = W + X*i and t = Y + Z*i.
func PairSplit(q []quat.Quaternion) (s, t []complex128) {
	s = make([]complex128, len(q))
	t = make([]complex128, len(q))

	for i, v := range q {
		s[i] = complex(v.W, v.X)
		t[i] = complex(v.Y, v.Z)
	}

	return s, t
}

// PairSynth is the exact inverse of [PairSplit]. The two component
// signals must have equal length.
func PairSynth(s, t []complex128) ([]quat.Quaternion, error) {
	if len(s) != len(t) {
		return nil, fmt.Errorf("%w: s=%d t=%d", ErrLengthMismatch, len(s), len(t))
	}

	out := make([]quat.Quaternion, len(s))
	for i := range out {
		out[i] = quat.Quaternion{
			W: real(s[i]),
			X: imag(s[i]),
			Y: real(t[i]),
			Z: imag(t[i]),
		}
	}

	return out, nil
}
