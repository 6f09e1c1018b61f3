// Package qfft computes the quaternion Fourier transform of quaternion
// signals with transform axis j, the QFT used for bivariate spectral
// analysis.
//
// A quaternion sample decomposes along the (1, j) basis as
// q = c1 + i*c2 with c1, c2 complex in the j-plane. Because i passes
// through right multiplication by e^(-j*theta) unchanged, the QFT reduces
// to two ordinary complex FFTs:
//
//	QFT(q)[k] = FFT(c1)[k] + i*FFT(c2)[k]
//
// Plans wrap a shared [algofft] plan and reuse internal scratch, so a plan
// must not be used from multiple goroutines concurrently.
package qfft
