package stokes

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bivar/quat"
)

// intensityTolerance is the S0 threshold below which a sample counts as
// having no signal.
const intensityTolerance = 1e-12 * 1e-12

// Vector holds the four Stokes parameters of one sample.
type Vector struct {
	S0, S1, S2, S3 float64
}

// Geo is the geometric polarization attitude of a sample: the orientation
// of the polarization ellipse and its ellipticity, both in radians.
// Azimuth lies in (-pi/2, pi/2], ellipticity in [-pi/4, pi/4].
type Geo struct {
	Azimuth, Ellipticity float64
}

// Norm returns the total Stokes intensity S0 = |q|^2 of an embedded
// sample.
func Norm(q quat.Quaternion) float64 {
	return q.NormSq()
}

// FromQuaternion computes the instantaneous Stokes parameters of an
// embedded sample from its analytic channel pair.
func FromQuaternion(q quat.Quaternion) Vector {
	p1 := q.W*q.W + q.Y*q.Y
	p2 := q.X*q.X + q.Z*q.Z

	// E1*conj(E2) with E1 = W + Y*i, E2 = X + Z*i.
	re := q.W*q.X + q.Y*q.Z
	im := q.Y*q.X - q.W*q.Z

	return Vector{
		S0: p1 + p2,
		S1: p1 - p2,
		S2: 2 * re,
		S3: 2 * im,
	}
}

// FromSignal converts a whole quaternion signal to per-sample Stokes
// vectors.
func FromSignal(q []quat.Quaternion) []Vector {
	if len(q) == 0 {
		return nil
	}

	n := len(q)
	comp := make([]float64, 4*n)
	w, x := comp[:n], comp[n:2*n]
	y, z := comp[2*n:3*n], comp[3*n:]

	for i, s := range q {
		w[i], x[i], y[i], z[i] = s.W, s.X, s.Y, s.Z
	}

	p1 := make([]float64, n)
	p2 := make([]float64, n)
	vecmath.Power(p1, w, y)
	vecmath.Power(p2, x, z)

	out := make([]Vector, n)
	for i := range out {
		re := w[i]*x[i] + y[i]*z[i]
		im := y[i]*x[i] - w[i]*z[i]

		out[i] = Vector{
			S0: p1[i] + p2[i],
			S1: p1[i] - p2[i],
			S2: 2 * re,
			S3: 2 * im,
		}
	}

	return out
}

// Normalize divides S1..S3 by the total intensity, returning a vector
// with S0 = 1. The tol regularizer is added to the denominator the way
// the spectral estimators use it (relative to the sample's own S0); with
// tol = 0 a vanishing S0 returns [ErrZeroIntensity] rather than NaN.
func Normalize(v Vector, tol float64) (Vector, error) {
	den := v.S0 + tol
	if den < intensityTolerance {
		return Vector{}, fmt.Errorf("%w: S0=%g", ErrZeroIntensity, v.S0)
	}

	return Vector{
		S0: 1,
		S1: v.S1 / den,
		S2: v.S2 / den,
		S3: v.S3 / den,
	}, nil
}

// NormalizeSignal normalizes per-sample Stokes vectors with the
// regularizer scaled by the record's peak intensity, matching the
// original estimators' tolerance semantics. With tol = 0 any vanishing
// sample aborts with [ErrZeroIntensity] and its index.
func NormalizeSignal(v []Vector, tol float64) ([]Vector, error) {
	maxS0 := 0.0
	for i := range v {
		if v[i].S0 > maxS0 {
			maxS0 = v[i].S0
		}
	}

	reg := tol * maxS0

	out := make([]Vector, len(v))
	for i := range v {
		n, err := Normalize(v[i], reg)
		if err != nil {
			return nil, fmt.Errorf("stokes: sample %d: %w", i, err)
		}

		out[i] = n
	}

	return out, nil
}

// DegreeOfPolarization returns Phi = sqrt(S1^2+S2^2+S3^2)/S0, in [0, 1]
// for physical vectors. A vanishing S0 returns [ErrZeroIntensity].
func DegreeOfPolarization(v Vector) (float64, error) {
	if v.S0 < intensityTolerance {
		return 0, fmt.Errorf("%w: S0=%g", ErrZeroIntensity, v.S0)
	}

	return math.Sqrt(v.S1*v.S1+v.S2*v.S2+v.S3*v.S3) / v.S0, nil
}

// ToGeo maps a Stokes vector to its polarization attitude. The asin
// argument is clamped to [-1, 1] to absorb rounding on fully polarized
// samples. A vanishing S0 returns [ErrZeroIntensity].
func ToGeo(v Vector) (Geo, error) {
	if v.S0 < intensityTolerance {
		return Geo{}, fmt.Errorf("%w: S0=%g", ErrZeroIntensity, v.S0)
	}

	r := v.S3 / v.S0
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}

	return Geo{
		Azimuth:     0.5 * math.Atan2(v.S2, v.S1),
		Ellipticity: 0.5 * math.Asin(r),
	}, nil
}

// FromGeo builds the fully polarized Stokes vector of intensity s0 with
// the given attitude. It is the exact inverse of [ToGeo] for unit-S0,
// fully polarized vectors.
func FromGeo(g Geo, s0 float64) Vector {
	c := math.Cos(2 * g.Ellipticity)

	return Vector{
		S0: s0,
		S1: s0 * c * math.Cos(2*g.Azimuth),
		S2: s0 * c * math.Sin(2*g.Azimuth),
		S3: s0 * math.Sin(2*g.Ellipticity),
	}
}
