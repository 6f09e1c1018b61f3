package quat

import "math"

// Euler is an intrinsic Z-Y-X (yaw, pitch, roll) angle triple in radians.
//
// Yaw rotates about z, then pitch about the rotated y, then roll about the
// twice-rotated x. Pitch is confined to [-pi/2, pi/2].
type Euler struct {
	Yaw, Pitch, Roll float64
}

// gimbalThreshold is the |sin(pitch)| value beyond which the rotation is
// treated as gimbal locked.
const gimbalThreshold = 1 - 1e-12

// FromEuler returns the unit quaternion for an Euler triple.
func FromEuler(e Euler) Quaternion {
	cy, sy := math.Cos(e.Yaw/2), math.Sin(e.Yaw/2)
	cp, sp := math.Cos(e.Pitch/2), math.Sin(e.Pitch/2)
	cr, sr := math.Cos(e.Roll/2), math.Sin(e.Roll/2)

	return Quaternion{
		W: cy*cp*cr + sy*sp*sr,
		X: cy*cp*sr - sy*sp*cr,
		Y: cy*sp*cr + sy*cp*sr,
		Z: sy*cp*cr - cy*sp*sr,
	}
}

// ToEuler converts a quaternion to its Euler triple. The input is
// normalized first; a zero quaternion returns [ErrZeroNorm].
//
// At gimbal lock (pitch = +/-pi/2) yaw and roll are co-dependent; the
// deterministic tie-break sets roll to 0 and folds the residual rotation
// into yaw, so ToEuler never produces arbitrary angles there.
func ToEuler(q Quaternion) (Euler, error) {
	u, err := q.Normalize()
	if err != nil {
		return Euler{}, err
	}

	sinp := 2 * (u.W*u.Y - u.Z*u.X)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}

	if math.Abs(sinp) >= gimbalThreshold {
		// q reduces to qz(yaw)*qy(+/-pi/2) once roll is pinned to zero.
		return Euler{
			Yaw:   2 * math.Atan2(u.Z, u.W),
			Pitch: math.Copysign(math.Pi/2, sinp),
			Roll:  0,
		}, nil
	}

	return Euler{
		Yaw:   math.Atan2(2*(u.W*u.Z+u.X*u.Y), 1-2*(u.Y*u.Y+u.Z*u.Z)),
		Pitch: math.Asin(sinp),
		Roll:  math.Atan2(2*(u.W*u.X+u.Y*u.Z), 1-2*(u.X*u.X+u.Y*u.Y)),
	}, nil
}
