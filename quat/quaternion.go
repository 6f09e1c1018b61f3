package quat

import "math"

// vectorTolerance is the norm-squared threshold below which a vector part
// is treated as zero during axis recovery.
const vectorTolerance = 1e-12 * 1e-12

// Quaternion is a Hamilton quaternion w + x*i + y*j + z*k.
//
// Values are plain scalars with no shared state. A Quaternion is unit-norm
// when used as an orientation; signal samples carry arbitrary norm.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity returns the multiplicative identity.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromVector returns the pure quaternion x*i + y*j + z*k.
func FromVector(x, y, z float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z}
}

// Add returns a + b.
func Add(a, b Quaternion) Quaternion {
	return Quaternion{a.W + b.W, a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func Sub(a, b Quaternion) Quaternion {
	return Quaternion{a.W - b.W, a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns s*q.
func Scale(s float64, q Quaternion) Quaternion {
	return Quaternion{s * q.W, s * q.X, s * q.Y, s * q.Z}
}

// Mul returns the Hamilton product a*b (i*j = k). The product is
// non-commutative; throughout this module the left factor is the signal
// sample and the right factor the modulation or rotation operand.
func Mul(a, b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Conj returns the conjugate w - x*i - y*j - z*k.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// NormSq returns |q|^2.
func (q Quaternion) NormSq() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Norm returns |q|.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.NormSq())
}

// Dot returns the 4-component dot product of a and b.
func Dot(a, b Quaternion) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Normalize returns q/|q|. It returns [ErrZeroNorm] when |q| vanishes.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.NormSq()
	if n < vectorTolerance {
		return Quaternion{}, ErrZeroNorm
	}

	inv := 1 / math.Sqrt(n)

	return Scale(inv, q), nil
}

// Inv returns the multiplicative inverse conj(q)/|q|^2. It returns
// [ErrZeroNorm] when |q| vanishes.
func (q Quaternion) Inv() (Quaternion, error) {
	n := q.NormSq()
	if n < vectorTolerance {
		return Quaternion{}, ErrZeroNorm
	}

	return Scale(1/n, q.Conj()), nil
}

// Polar decomposes q = modulus * (cos(angle) + axis*sin(angle)) with
// angle in [0, pi] and axis a unit 3-vector.
//
// When the vector part of q is numerically zero the axis is undefined; it
// is resolved from prevAxis so that sample-to-sample axis trajectories stay
// continuous. Callers that have no history pass a fixed default such as
// {1, 0, 0}. The angle is then 0 for W >= 0 and pi otherwise.
func (q Quaternion) Polar(prevAxis [3]float64) (modulus float64, axis [3]float64, angle float64) {
	modulus = q.Norm()

	vsq := q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if vsq < vectorTolerance {
		axis = prevAxis
		if q.W < 0 {
			angle = math.Pi
		}

		return modulus, axis, angle
	}

	vn := math.Sqrt(vsq)
	axis = [3]float64{q.X / vn, q.Y / vn, q.Z / vn}
	angle = math.Atan2(vn, q.W)

	return modulus, axis, angle
}

// Exp returns the quaternion exponential e^q.
func Exp(q Quaternion) Quaternion {
	ew := math.Exp(q.W)

	vsq := q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if vsq < vectorTolerance {
		return Quaternion{W: ew}
	}

	vn := math.Sqrt(vsq)
	s := ew * math.Sin(vn) / vn

	return Quaternion{
		W: ew * math.Cos(vn),
		X: s * q.X,
		Y: s * q.Y,
		Z: s * q.Z,
	}
}

// Log returns the principal quaternion logarithm: real part ln|q|, vector
// part axis*angle with angle = atan2(|v|, w) in [0, pi].
//
// At the branch point (negative real part, zero vector part) the axis is
// undefined; the principal value used here places it on +i, so
// Log(-1) = pi*i. Log of a zero quaternion returns [ErrZeroNorm].
func Log(q Quaternion) (Quaternion, error) {
	n := q.NormSq()
	if n < vectorTolerance {
		return Quaternion{}, ErrZeroNorm
	}

	lw := 0.5 * math.Log(n)

	vsq := q.X*q.X + q.Y*q.Y + q.Z*q.Z
	if vsq < vectorTolerance {
		if q.W < 0 {
			return Quaternion{W: lw, X: math.Pi}, nil
		}

		return Quaternion{W: lw}, nil
	}

	vn := math.Sqrt(vsq)
	angle := math.Atan2(vn, q.W)
	s := angle / vn

	return Quaternion{W: lw, X: s * q.X, Y: s * q.Y, Z: s * q.Z}, nil
}

// EqualUpToSign reports whether a and b agree within eps componentwise,
// allowing for the double cover: q and -q represent the same rotation, so
// both signs are checked.
func EqualUpToSign(a, b Quaternion, eps float64) bool {
	return nearly(a, b, eps) || nearly(a, Scale(-1, b), eps)
}

func nearly(a, b Quaternion, eps float64) bool {
	return math.Abs(a.W-b.W) <= eps &&
		math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}
