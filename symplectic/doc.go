// Package symplectic embeds bivariate signals into quaternion-valued
// signals and back.
//
// The embedding convention is fixed across the module: for channels u, v
// forming the complex signal x = u + i*v, the quaternion signal is
//
//	q[n] = u[n] + v[n]*i + H(u)[n]*j + H(v)[n]*k
//
// where H is the full-record FFT Hilbert quadrature. Equivalently
// q = x + H(x)*j with H applied per channel. [Synth] reads the original
// channels back from the W and X components, so Synth(Split(u, v))
// reproduces the input exactly.
//
// The quadrature is non-causal and requires the whole record in memory;
// there is no streaming variant.
package symplectic
