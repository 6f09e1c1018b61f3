// Package quat provides the minimal quaternion arithmetic needed for
// bivariate signal analysis: Hamilton products, conjugation, polar
// decomposition, exponential/logarithm, and the Euler-angle bijection for
// unit quaternions.
//
// This is intentionally not a general quaternion-algebra library. Only the
// operations consumed by the symplectic embedding, the Stokes conversions,
// and the AM-FM engine are provided.
//
// Conventions: Hamilton product with i*j = k. In [Mul] the left factor is
// the signal sample and the right factor the modulation or rotation
// operand; all packages in this module keep that order. Euler angles follow
// the intrinsic Z-Y-X (yaw, pitch, roll) convention.
package quat
