// Package stokes converts quaternion-embedded bivariate samples to Stokes
// polarization parameters and geometric (azimuth/ellipticity) attitude
// coordinates.
//
// For an embedded sample q = u + v*i + H(u)*j + H(v)*k the analytic
// channel pair is E1 = W + Y*i, E2 = X + Z*i, and the Stokes parameters
// follow the optics convention
//
//	S0 = |E1|^2 + |E2|^2 = |q|^2
//	S1 = |E1|^2 - |E2|^2
//	S2 = 2*Re(E1*conj(E2))
//	S3 = 2*Im(E1*conj(E2))
//
// so S1^2 + S2^2 + S3^2 <= S0^2 always holds, with equality for fully
// polarized samples. Azimuth and ellipticity are the half-angle sphere
// coordinates of the normalized Stokes vector.
package stokes
